package models

// Deck 是估點用的固定牌組，僅供前端顯示與選擇，
// 後端不以此驗證投票值
var Deck = []string{"0", "1", "2", "3", "5", "8", "13", "21", "?", "☕"}

// Participant 代表房間中的一位參與者
// 識別碼由前端產生，後端視為不透明字串
type Participant struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Vote     *string `json:"vote"`
	Voted    bool    `json:"voted"`
	LastSeen int64   `json:"last_seen"` // epoch 毫秒
}

// Room 表示一個估點房間
// 參與者列表依加入順序排列，識別碼在房間內唯一
type Room struct {
	ID           string        `json:"id"`
	Participants []Participant `json:"participants"`
	Revealed     bool          `json:"revealed"`
	CreatedAt    int64         `json:"created_at"` // epoch 毫秒
	UpdatedAt    int64         `json:"updated_at"` // epoch 毫秒
}

// NewParticipant 創建一個尚未投票的新參與者
func NewParticipant(id, name string, now int64) Participant {
	return Participant{
		ID:       id,
		Name:     name,
		Vote:     nil,
		Voted:    false,
		LastSeen: now,
	}
}

package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ProductTypes is the closed set of collectible categories the shop sells.
var ProductTypes = []string{"Card", "Figure", "Funko"}

const OrderStatusCompleted = "Completed"

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null"                 json:"role"`
}

type Product struct {
	ID    int     `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name  string  `gorm:"not null"                  json:"name"`
	Type  string  `gorm:"not null"                  json:"type"`
	Price float64 `gorm:"not null"                  json:"price"`
	Stock uint    `json:"stock"`
}

// Order is an append-only purchase record. ProductName and Price are
// snapshots taken at purchase time so later product edits or deletion
// never rewrite history.
type Order struct {
	ID          uint    `gorm:"primaryKey"     json:"id"`
	Username    string  `gorm:"index;not null" json:"username"`
	ProductName string  `gorm:"not null"       json:"product"`
	Price       float64 `gorm:"not null"       json:"price"`
	Status      string  `gorm:"not null"       json:"status"`
	CreatedAt   int64   `gorm:"autoCreateTime" json:"created_at"`
}

type Review struct {
	ID        uint   `gorm:"primaryKey"     json:"id"`
	ProductID int    `gorm:"index;not null" json:"product_id"`
	Username  string `gorm:"not null"       json:"username"`
	Comment   string `json:"comment"`
	Rating    int    `gorm:"not null"       json:"rating"`
}

func ValidProductType(t string) bool {
	for _, allowed := range ProductTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

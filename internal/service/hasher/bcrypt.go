package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt хэширует одноразовые коды подтверждения.
type Bcrypt struct {
	cost int
}

func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: bcrypt.DefaultCost}
}

// SetCost меняет стоимость хэширования. Значения вне [bcrypt.MinCost, bcrypt.MaxCost] игнорируются.
func (b *Bcrypt) SetCost(cost int) *Bcrypt {
	if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
		b.cost = cost
	}
	return b
}

func (b *Bcrypt) Hash(code string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(code), b.cost)
	if err != nil {
		return "", fmt.Errorf("hashing code: %s", err.Error())
	}
	return string(bytes), nil
}

func (b *Bcrypt) Compare(code, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
	return err == nil
}

package secret

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Hash возвращает SHA-256 пароля в нижнем hex. Это единственный формат
// предъявления секрета: клиент считает его один раз при входе и шлёт
// в query (GET) либо в теле (POST). Сам пароль по сети не ходит.
func Hash(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// Gate проверяет предъявленный хэш против серверного секрета.
// Пустой секрет отключает проверку целиком; при заданном секрете
// отсутствующий или несовпавший хэш отклоняется (fail-closed).
type Gate struct {
	hash string
}

func NewGate(password string) Gate {
	if password == "" {
		return Gate{}
	}
	return Gate{hash: Hash(password)}
}

// Required — требуется ли пароль (для GET /health).
func (g Gate) Required() bool { return g.hash != "" }

// Allow — пускать ли запрос с таким password_hash.
func (g Gate) Allow(provided string) bool {
	if g.hash == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(g.hash)) == 1
}

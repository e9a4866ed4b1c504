package admission

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Множество досок, для которых создана очередь: queue:boards -> {board_id}
	KeyBoards = "queue:boards"

	// Ключи очереди доски. Фигурные скобки - hash tag кластера: все ключи доски лежат в одном слоте,
	// поэтому их можно трогать одним скриптом или MULTI.
	keyPrefix = "queue:{%d}:"
)

type boardKeys struct {
	meta     string // маркер существования очереди, живет до закрытия доски
	ticket   string // счетчик выданных билетов
	cutoff   string // последний допущенный билет
	members  string // HASH user_id -> ticket
	line     string // ZSET user_id по номеру билета
	admitted string // ZSET user_id по времени допуска (unix ms)
}

func keysFor(boardID int64) boardKeys {
	p := fmt.Sprintf(keyPrefix, boardID)
	return boardKeys{
		meta:     p + "meta",
		ticket:   p + "ticket",
		cutoff:   p + "cutoff",
		members:  p + "members",
		line:     p + "line",
		admitted: p + "admitted",
	}
}

func (k boardKeys) all() []string {
	return []string{k.meta, k.ticket, k.cutoff, k.members, k.line, k.admitted}
}

func member(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

func parseBoardID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse board id `%s`: %w", raw, err)
	}
	return id, nil
}

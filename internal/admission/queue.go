// Package admission реализует очередь допуска к распродаже: честную FIFO очередь на каждую доску,
// построенную на счетчике билетов и указателе последнего допущенного билета (cutoff).
package admission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Position место пользователя в очереди.
type Position struct {
	Ticket   int64
	Ahead    int64 // участников с меньшим билетом, еще не допущенных
	Admitted bool
}

type Queue struct {
	rdb redis.UniversalClient
	now func() time.Time
}

func NewQueue(rdb redis.UniversalClient) *Queue {
	return &Queue{rdb: rdb, now: time.Now}
}

// CreateQueue создает очередь доски, которая живет до closesAt. Повторный вызов не сбрасывает счетчики,
// а только продлевает время жизни ключей. Любая ошибка оборачивается в domain.ErrQueueCreateFail.
func (q *Queue) CreateQueue(ctx context.Context, boardID int64, closesAt time.Time) error {
	if !closesAt.After(q.now()) {
		return fmt.Errorf("%w: board %d closes in the past (%s)", domain.ErrQueueCreateFail, boardID, closesAt)
	}

	k := keysFor(boardID)
	_, err := q.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, k.meta, closesAt.Unix(), 0)
		pipe.SetNX(ctx, k.ticket, 0, 0)
		pipe.SetNX(ctx, k.cutoff, 0, 0)
		for _, key := range k.all() {
			pipe.ExpireAt(ctx, key, closesAt)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: board %d: %s", domain.ErrQueueCreateFail, boardID, err.Error())
	}

	if err = q.rdb.SAdd(ctx, KeyBoards, boardID).Err(); err != nil {
		return fmt.Errorf("%w: register board %d: %s", domain.ErrQueueCreateFail, boardID, err.Error())
	}
	return nil
}

// Join ставит пользователя в очередь. Повторный вызов возвращает тот же билет и текущую позицию.
// Если очередь не создана или уже истекла, возвращает domain.ErrQueueNotFound.
func (q *Queue) Join(ctx context.Context, boardID, userID int64) (*Position, error) {
	k := keysFor(boardID)
	res, err := joinScript.Run(ctx, q.rdb,
		[]string{k.meta, k.ticket, k.cutoff, k.members, k.line},
		member(userID),
	).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("join queue of board %d: %w", boardID, err)
	}
	if len(res) != 3 {
		return nil, fmt.Errorf("join queue of board %d: unexpected reply %v", boardID, res)
	}
	if res[0] < 0 {
		return nil, fmt.Errorf("join queue of board %d: %w", boardID, domain.ErrQueueNotFound)
	}
	return &Position{Ticket: res[0], Ahead: res[1], Admitted: res[0] <= res[2]}, nil
}

// Exit удаляет пользователя из очереди. Отсутствие пользователя или очереди ошибкой не считается.
func (q *Queue) Exit(ctx context.Context, boardID, userID int64) error {
	k := keysFor(boardID)
	m := member(userID)
	_, err := q.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, k.members, m)
		pipe.ZRem(ctx, k.line, m)
		pipe.ZRem(ctx, k.admitted, m)
		return nil
	})
	if err != nil {
		return fmt.Errorf("exit queue of board %d: %w", boardID, err)
	}
	return nil
}

// IsAdmitted true если пользователь стоит в очереди и его билет не больше cutoff.
// Результат монотонен: cutoff только растет, а билет не меняется, пока пользователь в очереди.
func (q *Queue) IsAdmitted(ctx context.Context, boardID, userID int64) (bool, error) {
	k := keysFor(boardID)
	var (
		ticketCmd *redis.StringCmd
		cutoffCmd *redis.StringCmd
	)
	_, err := q.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		ticketCmd = pipe.HGet(ctx, k.members, member(userID))
		cutoffCmd = pipe.Get(ctx, k.cutoff)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, fmt.Errorf("check admission on board %d: %w", boardID, err)
	}

	ticket, ticketErr := ticketCmd.Int64()
	if errors.Is(ticketErr, redis.Nil) {
		return false, nil
	}
	if ticketErr != nil {
		return false, fmt.Errorf("read ticket on board %d: %w", boardID, ticketErr)
	}
	cutoff, cutoffErr := cutoffCmd.Int64()
	if errors.Is(cutoffErr, redis.Nil) {
		return false, nil
	}
	if cutoffErr != nil {
		return false, fmt.Errorf("read cutoff on board %d: %w", boardID, cutoffErr)
	}
	return ticket <= cutoff, nil
}

// Admit допускает до n следующих участников очереди и возвращает новый cutoff.
// Одновременно допущенных участников не больше capacity, capacity <= 0 снимает ограничение.
// Cutoff никогда не уходит дальше последнего выданного билета.
func (q *Queue) Admit(ctx context.Context, boardID int64, n, capacity int64) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("admit on board %d: non positive batch %d", boardID, n)
	}
	if capacity < 0 {
		capacity = 0
	}
	k := keysFor(boardID)
	cutoff, err := admitScript.Run(ctx, q.rdb,
		[]string{k.meta, k.cutoff, k.line, k.admitted},
		n, q.now().UnixMilli(), capacity,
	).Int64()
	if err != nil {
		return 0, fmt.Errorf("admit on board %d: %w", boardID, err)
	}
	if cutoff < 0 {
		return 0, fmt.Errorf("admit on board %d: %w", boardID, domain.ErrQueueNotFound)
	}
	return cutoff, nil
}

// EvictExpired удаляет из очереди участников, допущенных раньше admittedBefore и так и не оформивших заказ.
func (q *Queue) EvictExpired(ctx context.Context, boardID int64, admittedBefore time.Time) (int, error) {
	k := keysFor(boardID)
	n, err := evictScript.Run(ctx, q.rdb,
		[]string{k.admitted, k.members, k.line},
		admittedBefore.UnixMilli(),
	).Int()
	if err != nil {
		return 0, fmt.Errorf("evict expired on board %d: %w", boardID, err)
	}
	return n, nil
}

// ActiveBoards возвращает доски с живой очередью. Доски с истекшей очередью удаляются из KeyBoards.
func (q *Queue) ActiveBoards(ctx context.Context) ([]int64, error) {
	raw, err := q.rdb.SMembers(ctx, KeyBoards).Result()
	if err != nil {
		return nil, fmt.Errorf("list queue boards: %w", err)
	}

	boards := make([]int64, 0, len(raw))
	for _, r := range raw {
		boardID, parseErr := parseBoardID(r)
		if parseErr != nil {
			_ = q.rdb.SRem(ctx, KeyBoards, r).Err()
			continue
		}
		n, existsErr := q.rdb.Exists(ctx, keysFor(boardID).meta).Result()
		if existsErr != nil {
			return nil, fmt.Errorf("check queue of board %d: %w", boardID, existsErr)
		}
		if n == 0 {
			if remErr := q.rdb.SRem(ctx, KeyBoards, r).Err(); remErr != nil {
				return nil, fmt.Errorf("prune board %d: %w", boardID, remErr)
			}
			continue
		}
		boards = append(boards, boardID)
	}
	return boards, nil
}

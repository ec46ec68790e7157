package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/connectfour-console/internal/entity"
)

const (
	ResultRed    = "red"
	ResultYellow = "yellow"
	ResultDraw   = "draw"
)

const (
	redWinsKey    = "score:red"
	yellowWinsKey = "score:yellow"
	drawsKey      = "score:draws"
)

var ErrUnknownResult = errors.New("unknown game result")

// ScoreRepository keeps the career win/draw tally. It stores aggregate
// counters only, never games or moves.
type ScoreRepository interface {
	RecordResult(ctx context.Context, result string) error
	Get(ctx context.Context) (*entity.Score, error)
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func (that *dbScore) RecordResult(ctx context.Context, result string) error {
	key, err := scoreKey(result)
	if err != nil {
		return err
	}

	if err = that.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

func (that *dbScore) Get(ctx context.Context) (*entity.Score, error) {
	score := &entity.Score{}

	counters := []struct {
		key string
		dst *int
	}{
		{redWinsKey, &score.RedWins},
		{yellowWinsKey, &score.YellowWins},
		{drawsKey, &score.Draws},
	}

	for _, counter := range counters {
		value, err := that.client.Get(ctx, counter.key).Int()

		if errors.Is(err, redis.Nil) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", counter.key, err)
		}

		*counter.dst = value
	}

	return score, nil
}

func scoreKey(result string) (string, error) {
	switch result {
	case ResultRed:
		return redWinsKey, nil
	case ResultYellow:
		return yellowWinsKey, nil
	case ResultDraw:
		return drawsKey, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownResult, result)
	}
}

package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/connectfour-console/internal/apperror"
	"github.com/rocketscienceinc/connectfour-console/internal/config"
	"github.com/rocketscienceinc/connectfour-console/internal/entity"
	"github.com/rocketscienceinc/connectfour-console/internal/game"
	"github.com/rocketscienceinc/connectfour-console/internal/repository"
	"github.com/rocketscienceinc/connectfour-console/internal/repository/storage"
	"github.com/rocketscienceinc/connectfour-console/internal/service"
	"github.com/rocketscienceinc/connectfour-console/internal/terminal"
	"github.com/rocketscienceinc/connectfour-console/internal/usecase"
)

var ErrUnknownMode = errors.New("unknown game mode")

// RunApp - runs one game to completion on the console.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	var scoreRepo repository.ScoreRepository

	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		scoreRepo = repository.NewScoreRepository(redisStorage.Connection)
	}

	term := terminal.New(os.Stdin, os.Stdout)

	redPlayer := entity.NewRedPlayer(conf.Players.RedName)
	yellowPlayer := entity.NewYellowPlayer(conf.Players.YellowName)

	yellowStrategy, err := buildYellowStrategy(conf.Mode, term, yellowPlayer)
	if err != nil {
		return err
	}

	gameManager := usecase.NewGameManager(logger, term, game.NewBoard(),
		usecase.Participant{Player: redPlayer, Strategy: service.NewConsoleStrategy(term, redPlayer)},
		usecase.Participant{Player: yellowPlayer, Strategy: yellowStrategy},
	)

	status, err := gameManager.Run(ctx)

	switch {
	case errors.Is(err, apperror.ErrGameAbandoned), errors.Is(err, apperror.ErrInputClosed):
		log.Info("game abandoned before completion")
		return nil
	case errors.Is(err, context.Canceled):
		return nil
	case err != nil:
		return fmt.Errorf("game loop failed: %w", err)
	}

	log.Info("game finished", "status", status)

	if scoreRepo != nil {
		reportScore(ctx, log, term, scoreRepo, status, redPlayer, yellowPlayer)
	}

	return nil
}

func buildYellowStrategy(mode string, term *terminal.Terminal, player *entity.Player) (service.Strategy, error) {
	switch mode {
	case config.ModeBot:
		rnd := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
		return service.NewBotStrategy(player.Mark, rnd), nil
	case config.ModePVP:
		return service.NewConsoleStrategy(term, player), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}

// reportScore records the finished game on the scoreboard and prints the
// career tally. Scoreboard trouble is logged, never fatal: the game is over.
func reportScore(ctx context.Context, log *slog.Logger, term *terminal.Terminal, scoreRepo repository.ScoreRepository, status string, red, yellow *entity.Player) {
	result, ok := resultForStatus(status)
	if !ok {
		return
	}

	if err := scoreRepo.RecordResult(ctx, result); err != nil {
		log.Error("could not record game result", "error", err)
		return
	}

	score, err := scoreRepo.Get(ctx)
	if err != nil {
		log.Error("could not load scoreboard", "error", err)
		return
	}

	term.Println(fmt.Sprintf("Career score: %s %d, %s %d, draws %d",
		red.Name, score.RedWins, yellow.Name, score.YellowWins, score.Draws))
}

func resultForStatus(status string) (string, bool) {
	switch status {
	case usecase.StatusRedWon:
		return repository.ResultRed, true
	case usecase.StatusYellowWon:
		return repository.ResultYellow, true
	case usecase.StatusDraw:
		return repository.ResultDraw, true
	default:
		return "", false
	}
}

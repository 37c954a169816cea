package presence

import (
	"context"
	"time"

	"github.com/gdugdh24/matchcore/internal/repository"
)

type spyUsers struct {
	repository.UserRepository
	asked *[]string
}

func (s *spyUsers) LastActive(ctx context.Context, ids []string) (map[string]time.Time, error) {
	*s.asked = append(*s.asked, ids...)
	return s.UserRepository.LastActive(ctx, ids)
}

package postgres

import (
	"github.com/gdugdh24/matchcore/internal/repository"
	"github.com/jmoiron/sqlx"
)

func NewRepositories(db *sqlx.DB) *repository.Repositories {
	return &repository.Repositories{
		Users:        NewUserRepository(db),
		Profiles:     NewProfileRepository(db),
		Swipes:       NewSwipeRepository(db),
		Matches:      NewMatchRepository(db),
		Albums:       NewAlbumRepository(db),
		Messages:     NewMessageRepository(db),
		Winks:        NewWinkRepository(db),
		ProfileViews: NewProfileViewRepository(db),
		Screenshots:  NewScreenshotRepository(db),
		PublicChat:   NewPublicMessageRepository(db),
	}
}

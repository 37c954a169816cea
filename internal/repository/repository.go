package repository

// Repositories groups the storage backends the use cases depend on.
type Repositories struct {
	Users        UserRepository
	Profiles     ProfileRepository
	Swipes       SwipeRepository
	Matches      MatchRepository
	Albums       AlbumRepository
	Messages     MessageRepository
	Winks        WinkRepository
	ProfileViews ProfileViewRepository
	Screenshots  ScreenshotRepository
	PublicChat   PublicMessageRepository
}

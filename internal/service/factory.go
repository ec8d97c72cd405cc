package service

import (
	"afriverse.co/editorial/core/config"
	"afriverse.co/editorial/internal/queue"
	"afriverse.co/editorial/internal/store"
)

type Services struct {
	stores     *store.Stores
	txRunner   TxRunner
	producer   queue.Producer
	workOSCfg  config.WorkOSConfig
	studioURL  string
	sweepLimit int32
}

func NewServices(stores *store.Stores, txRunner TxRunner, producer queue.Producer, cfg config.Config) *Services {
	return &Services{
		stores:     stores,
		txRunner:   txRunner,
		producer:   producer,
		workOSCfg:  cfg.WorkOS,
		studioURL:  cfg.StudioURL,
		sweepLimit: int32(cfg.Publishing.SweepLimit),
	}
}

func (s *Services) Posts() PostService {
	return NewPostService(s.stores.Posts(), s.stores.Activity())
}

func (s *Services) Workflow() WorkflowService {
	return NewWorkflowService(s.txRunner, s.stores.Posts(), s.stores.Reviews(), s.stores.Feedback(), s.producer)
}

func (s *Services) Publisher() PublisherService {
	return NewPublisherService(s.txRunner, s.stores.Posts(), s.producer, s.sweepLimit)
}

func (s *Services) Users() UserService {
	return NewUserService(s.stores.Users())
}

func (s *Services) Auth() AuthService {
	return NewAuthService(
		s.stores.Users(),
		s.stores.Sessions(),
		s.workOSCfg,
		s.studioURL,
	)
}

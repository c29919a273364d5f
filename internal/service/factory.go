package service

import (
	"designmentor.app/api/core/config"
	"designmentor.app/api/internal/enrich"
	"designmentor.app/api/internal/lock"
	"designmentor.app/api/internal/store"
)

type Services struct {
	stores    *store.Stores
	txRunner  TxRunner
	locker    lock.Locker
	generator enrich.Generator
	cfg       config.Config
}

func NewServices(stores *store.Stores, txRunner TxRunner, locker lock.Locker, generator enrich.Generator, cfg config.Config) *Services {
	return &Services{
		stores:    stores,
		txRunner:  txRunner,
		locker:    locker,
		generator: generator,
		cfg:       cfg,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.stores.Sessions(), s.cfg.WorkOS)
}

func (s *Services) Projects() ProjectService {
	return NewProjectService(s.stores.Projects(), s.stores.Designs(), s.stores.Suggestions())
}

func (s *Services) Analysis() AnalysisService {
	return NewAnalysisService(
		s.stores.Projects(),
		s.stores.Designs(),
		s.stores.Suggestions(),
		s.txRunner,
		s.locker,
		s.generator,
		s.cfg.Enrichment,
	)
}

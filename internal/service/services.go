package service

import (
	"github.com/appforge/console-server/internal/config"
	"github.com/appforge/console-server/internal/consumer"
	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/internal/store"
)

type Services struct {
	AuthService         AuthService
	AppService          AppService
	APITokenService     APITokenService
	AdvertisingService  AdvertisingService
	TagService          TagService
	ConversationService ConversationService
}

func NewServices(storages *store.Storages, notifier consumer.Notifier, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:         NewAuthService(cfg.App, logger),
		AppService:          NewAppService(storages.Apps, storages.DefaultApp, notifier, logger),
		APITokenService:     NewAPITokenService(storages.APITokens, storages.Apps, notifier, cfg.App, logger),
		AdvertisingService:  NewAdvertisingService(storages.Advertising, notifier, logger),
		TagService:          NewTagService(storages.Tags, notifier, logger),
		ConversationService: NewConversationService(storages.Conversations, storages.Apps, notifier, logger),
	}
}

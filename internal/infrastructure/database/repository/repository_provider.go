package repository

import (
	"github.com/google/wire"

	"github.com/chaosweaver007/Genesis/internal/infrastructure/database/repository/archiverepo"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/database/repository/consentrepo"
)

var RepositoryProvider = wire.NewSet(
	archiverepo.NewConversationRecordGormRepository,
	archiverepo.NewWisdomPatternGormRepository,
	archiverepo.NewCollectiveInsightGormRepository,
	consentrepo.NewConsentGormRepository,
)

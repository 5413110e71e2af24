package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/repodrop/internal/domain/repositories"
	"github.com/rios0rios0/repodrop/internal/infrastructure/repositories/gogit"
	"github.com/rios0rios0/repodrop/internal/infrastructure/repositories/preferences"
	"github.com/rios0rios0/repodrop/internal/infrastructure/repositories/prompter"
	"github.com/rios0rios0/repodrop/internal/infrastructure/repositories/remediation"
	"github.com/rios0rios0/repodrop/internal/infrastructure/repositories/reporter"
	"github.com/rios0rios0/repodrop/internal/infrastructure/repositories/trash"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register the credential registry with all known hosting providers
	if err := container.Provide(gogit.NewDefaultCredentialRegistry); err != nil {
		return err
	}

	// Register implementations bound to their domain interfaces
	providers := []interface{}{
		func(credentials *gogit.CredentialRegistry) domainRepos.GitRepositoryFactory {
			return gogit.NewGitRepositoryFactory(credentials)
		},
		func() domainRepos.RemediationRepository {
			return remediation.NewExecRemediationRepository()
		},
		func() domainRepos.PreferenceRepository {
			return preferences.NewYAMLPreferenceRepository()
		},
		func() domainRepos.PrompterRepository {
			return prompter.NewHuhPrompterRepository()
		},
		func() domainRepos.TrashRepository {
			return trash.NewFreedesktopTrashRepository()
		},
		func() domainRepos.ReporterRepository {
			return reporter.NewLipglossReporterRepository()
		},
	}
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}

	return nil
}

package gogit

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
)

const defaultSSHUser = "git"

// HostingProvider describes how to authenticate HTTP fetches against one Git host.
type HostingProvider struct {
	Name string
	// Hosts are matched as suffixes of the remote host name.
	Hosts []string
	// Username is sent together with the token as HTTP basic auth.
	Username string
	// EnvVars are consulted, in order, when no token is configured.
	EnvVars []string
}

// MatchesHost reports whether the host belongs to this provider.
func (p HostingProvider) MatchesHost(host string) bool {
	host = strings.ToLower(host)
	for _, candidate := range p.Hosts {
		if host == candidate || strings.HasSuffix(host, "."+candidate) {
			return true
		}
	}
	return false
}

// CredentialRegistry picks the auth method for a remote URL: the SSH agent for SSH
// remotes, a provider token for HTTP(S) remotes, nothing for local ones.
type CredentialRegistry struct {
	providers []HostingProvider
}

// NewCredentialRegistry creates an empty credential registry.
func NewCredentialRegistry() *CredentialRegistry {
	return &CredentialRegistry{}
}

// NewDefaultCredentialRegistry creates a registry that knows GitHub, GitLab and Azure DevOps.
func NewDefaultCredentialRegistry() *CredentialRegistry {
	registry := NewCredentialRegistry()
	registry.Register(HostingProvider{
		Name:     entities.ProviderGitHub,
		Hosts:    []string{"github.com"},
		Username: "x-access-token",
		EnvVars:  []string{"GITHUB_TOKEN", "GH_TOKEN"},
	})
	registry.Register(HostingProvider{
		Name:     entities.ProviderGitLab,
		Hosts:    []string{"gitlab.com"},
		Username: "oauth2",
		EnvVars:  []string{"GITLAB_TOKEN", "GL_TOKEN"},
	})
	registry.Register(HostingProvider{
		Name:     entities.ProviderAzureDevOps,
		Hosts:    []string{"dev.azure.com", "visualstudio.com"},
		Username: "pat",
		EnvVars:  []string{"AZURE_DEVOPS_EXT_PAT", "SYSTEM_ACCESSTOKEN"},
	})
	return registry
}

// Register adds a hosting provider.
func (r *CredentialRegistry) Register(provider HostingProvider) {
	r.providers = append(r.providers, provider)
}

// Resolve returns the auth method to use for rawURL. A nil method means anonymous access.
func (r *CredentialRegistry) Resolve(rawURL string, access entities.RemoteAccess) (transport.AuthMethod, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("%w: remote has no URL", entities.ErrConnection)
	}

	endpoint, err := transport.NewEndpoint(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid remote URL %q: %w", entities.ErrConnection, rawURL, err)
	}

	switch endpoint.Protocol {
	case "ssh":
		user := endpoint.User
		if user == "" {
			user = defaultSSHUser
		}
		auth, agentErr := gitssh.NewSSHAgentAuth(user)
		if agentErr != nil {
			return nil, fmt.Errorf("%w: ssh agent: %w", entities.ErrConnection, agentErr)
		}
		return auth, nil
	case "http", "https":
		return r.httpAuth(endpoint, access), nil
	default:
		return nil, nil //nolint:nilnil // local transports need no credentials
	}
}

func (r *CredentialRegistry) httpAuth(endpoint *transport.Endpoint, access entities.RemoteAccess) transport.AuthMethod {
	if endpoint.Password != "" {
		return &githttp.BasicAuth{Username: endpoint.User, Password: endpoint.Password}
	}

	provider, ok := r.providerFor(endpoint.Host)
	if !ok {
		return nil
	}
	token := access.Tokens[provider.Name]
	if token == "" {
		token = tokenFromEnv(provider.EnvVars)
	}
	if token == "" {
		return nil
	}
	return &githttp.BasicAuth{Username: provider.Username, Password: token}
}

func (r *CredentialRegistry) providerFor(host string) (HostingProvider, bool) {
	for _, p := range r.providers {
		if p.MatchesHost(host) {
			return p, true
		}
	}
	return HostingProvider{}, false
}

func tokenFromEnv(vars []string) string {
	for _, name := range vars {
		if t := os.Getenv(name); t != "" {
			return t
		}
	}
	return ""
}

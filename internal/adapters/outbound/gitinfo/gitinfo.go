package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/respdiff/respdiff/internal/domain"
)

// GitInfoAdapter implements domain.RevisionReader using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

// Revision returns HEAD of the repository containing dir. Parent directories
// are searched for .git, so request files deep in a checkout still resolve.
func (g *GitInfoAdapter) Revision(dir string) (domain.Revision, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return domain.Revision{}, fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return domain.Revision{}, fmt.Errorf("getting HEAD: %w", err)
	}

	rev := domain.Revision{Commit: head.Hash().String()}
	if head.Name().IsBranch() {
		rev.Branch = head.Name().Short()
	}
	return rev, nil
}

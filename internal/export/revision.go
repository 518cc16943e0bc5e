package export

import (
	"errors"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Revision identifies the commit the generated files were built from.
type Revision struct {
	Hash   string
	Branch string
}

// String renders the revision as "branch@hash", or just the hash on a
// detached HEAD.
func (r Revision) String() string {
	if r.Hash == "" {
		return ""
	}
	if r.Branch == "" {
		return r.Hash
	}
	return r.Branch + "@" + r.Hash
}

// DetectRevision looks for a git repository at dir or any parent and reports
// its HEAD. A directory outside version control, or a repository without
// commits, yields a zero Revision and no error.
func DetectRevision(dir string) (Revision, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return Revision{}, nil
		}
		return Revision{}, err
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return Revision{}, nil
		}
		return Revision{}, err
	}

	rev := Revision{Hash: head.Hash().String()[:7]}
	if head.Name().IsBranch() {
		rev.Branch = head.Name().Short()
	}
	return rev, nil
}

package buildinfo

import (
	git "github.com/go-git/go-git/v5"
)

// VCS reports dev-build provenance: when no commit was injected at build time
// and the working directory sits inside a git work tree, it returns the short
// HEAD hash plus the branch name. Outside a work tree, or on ldflags builds,
// it returns "".
func VCS() string {
	if Commit != "" {
		return ""
	}
	repo, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	head, err := repo.Head()
	if err != nil {
		return ""
	}
	h := head.Hash().String()
	if len(h) > 7 {
		h = h[:7]
	}
	if name := head.Name(); name.IsBranch() {
		return h + " (" + name.Short() + ")"
	}
	return h
}

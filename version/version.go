package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/cvecgen/errors"
)

// Build information. These variables are set at build time via ldflags.
var (
	// CommitHash is the git commit hash when the binary was built
	CommitHash = "dev"

	// BuildTime is when the binary was built
	BuildTime = "unknown"

	// Version is the semantic version (if tagged)
	Version = "dev"
)

// Info contains version and build information
type Info struct {
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the current version information
func Get() Info {
	return Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a human-readable version string
func (i Info) String() string {
	if i.Version != "dev" {
		return fmt.Sprintf("cvecgen %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildTime)
	}
	return fmt.Sprintf("cvecgen dev (commit %s, built %s)", i.CommitHash, i.BuildTime)
}

// Satisfies checks the running version against a semver constraint such as
// ">= 0.2.0". An empty constraint and dev builds always pass.
func Satisfies(constraint string) error {
	return check(Version, constraint)
}

func check(running, constraint string) error {
	if constraint == "" || running == "dev" {
		return nil
	}

	ver, err := semver.NewVersion(running)
	if err != nil {
		return errors.Wrapf(err, "invalid generator version %s", running)
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(err, "invalid version constraint %s", constraint)
	}

	if !c.Check(ver) {
		return errors.WithHint(
			errors.Wrapf(errors.ErrIncompatibleVersion, "config requires cvecgen %s, but running %s", constraint, running),
			"upgrade cvecgen or relax the requires constraint")
	}
	return nil
}

package ports

import "github.com/aalvaropc/primer/internal/domain"

// ArtifactStore persists transcripts and check runs for later comparison.
type ArtifactStore interface {
	SaveTranscript(t domain.Transcript) (id string, err error)
	SaveCheck(run domain.CheckRun) (id string, err error)
}

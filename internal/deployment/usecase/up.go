package usecase

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"skylift/internal/deployment"
	"skylift/internal/deployment/repository"
	"skylift/internal/model"
)

// Up stores the uploaded source archive under the deployment id and
// enqueues the deployment for the pipeline worker.
func (uc *implUseCase) Up(ctx context.Context, sc model.Scope, input deployment.UpInput) (deployment.UpOutput, error) {
	p, err := uc.projects.GetOwned(ctx, sc, input.ProjectID)
	if err != nil {
		return deployment.UpOutput{}, err
	}

	id := uuid.NewString()
	path := filepath.Join(uc.cfg.SourceDir, id+".tar.gz")

	if err := os.MkdirAll(uc.cfg.SourceDir, 0o755); err != nil {
		uc.l.Errorf(ctx, "deployment/usecase.Up.MkdirAll: %v", err)
		return deployment.UpOutput{}, deployment.ErrStoreArchive
	}

	f, err := os.Create(path)
	if err != nil {
		uc.l.Errorf(ctx, "deployment/usecase.Up.Create: %v", err)
		return deployment.UpOutput{}, deployment.ErrStoreArchive
	}
	n, err := io.Copy(f, input.Archive)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		uc.l.Errorf(ctx, "deployment/usecase.Up.Copy: %v", err)
		return deployment.UpOutput{}, deployment.ErrStoreArchive
	}
	if n == 0 {
		os.Remove(path)
		return deployment.UpOutput{}, deployment.ErrEmptyArchive
	}

	d, err := uc.repo.Create(ctx, repository.CreateOptions{
		ID:         id,
		ProjectID:  p.ID,
		SourcePath: path,
	})
	if err != nil {
		os.Remove(path)
		uc.l.Errorf(ctx, "deployment/usecase.Up.repo.Create: %v", err)
		return deployment.UpOutput{}, err
	}

	uc.l.Infof(ctx, "queued deployment %s for project %s (%d bytes)", d.ID, p.ID, n)
	return deployment.UpOutput{Deployment: d}, nil
}

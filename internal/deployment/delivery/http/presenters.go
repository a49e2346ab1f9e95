package http

import (
	"time"

	"skylift/internal/deployment"
	"skylift/internal/model"
)

type deploymentResp struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"project_id"`
	Status     string     `json:"status"`
	ImageRef   string     `json:"image_ref,omitempty"`
	FailedStep string     `json:"failed_step,omitempty"`
	Restarts   int        `json:"restarts"`
	CreatedAt  time.Time  `json:"created_at"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

type logsResp struct {
	Deployment deploymentResp  `json:"deployment"`
	Lines      []model.LogLine `json:"lines"`
}

func (h *handler) newDeploymentResp(d model.Deployment) deploymentResp {
	return deploymentResp{
		ID:         d.ID,
		ProjectID:  d.ProjectID,
		Status:     string(d.Status),
		ImageRef:   d.ImageRef,
		FailedStep: d.FailedStep,
		Restarts:   d.Restarts,
		CreatedAt:  d.CreatedAt,
		StartedAt:  d.StartedAt,
		FinishedAt: d.FinishedAt,
	}
}

func (h *handler) newListResp(ds []model.Deployment) []deploymentResp {
	out := make([]deploymentResp, 0, len(ds))
	for _, d := range ds {
		out = append(out, h.newDeploymentResp(d))
	}
	return out
}

func (h *handler) newLogsResp(out deployment.LogsOutput) logsResp {
	lines := out.Lines
	if lines == nil {
		lines = []model.LogLine{}
	}
	return logsResp{
		Deployment: h.newDeploymentResp(out.Deployment),
		Lines:      lines,
	}
}

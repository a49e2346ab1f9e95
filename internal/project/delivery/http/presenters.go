package http

import (
	"time"

	"skylift/internal/model"
	"skylift/internal/project"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name" binding:"required,min=1,max=64"`
	Environment string `json:"environment" binding:"omitempty,oneof=development production"`
}

func (r createReq) toInput() project.CreateInput {
	return project.CreateInput{
		Name:        r.Name,
		Environment: model.Environment(r.Environment),
	}
}

// --- Response DTOs ---

type projectResp struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	Environment        string    `json:"environment"`
	ActiveDeploymentID string    `json:"active_deployment_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type listResp struct {
	Projects []projectResp `json:"projects"`
}

type deploymentResp struct {
	ID         string     `json:"id"`
	Status     string     `json:"status"`
	FailedStep string     `json:"failed_step,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

type pluginResp struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Status string `json:"status"`
}

type domainResp struct {
	Hostname string `json:"hostname"`
	Kind     string `json:"kind"`
	Status   string `json:"status"`
}

type statusResp struct {
	Project          projectResp     `json:"project"`
	ActiveDeployment *deploymentResp `json:"active_deployment,omitempty"`
	LatestDeployment *deploymentResp `json:"latest_deployment,omitempty"`
	Plugins          []pluginResp    `json:"plugins"`
	Domains          []domainResp    `json:"domains"`
}

func (h *handler) newProjectResp(p model.Project) projectResp {
	return projectResp{
		ID:                 p.ID,
		Name:               p.Name,
		Slug:               p.Slug,
		Environment:        string(p.Environment),
		ActiveDeploymentID: p.ActiveDeploymentID,
		CreatedAt:          p.CreatedAt,
	}
}

func (h *handler) newListResp(out project.ListOutput) listResp {
	resp := listResp{Projects: make([]projectResp, 0, len(out.Projects))}
	for _, p := range out.Projects {
		resp.Projects = append(resp.Projects, h.newProjectResp(p))
	}
	return resp
}

func newDeploymentResp(d *model.Deployment) *deploymentResp {
	if d == nil {
		return nil
	}
	return &deploymentResp{
		ID:         d.ID,
		Status:     string(d.Status),
		FailedStep: d.FailedStep,
		CreatedAt:  d.CreatedAt,
		FinishedAt: d.FinishedAt,
	}
}

func (h *handler) newStatusResp(out project.StatusOutput) statusResp {
	resp := statusResp{
		Project:          h.newProjectResp(out.Project),
		ActiveDeployment: newDeploymentResp(out.ActiveDeployment),
		LatestDeployment: newDeploymentResp(out.LatestDeployment),
		Plugins:          make([]pluginResp, 0, len(out.Plugins)),
		Domains:          make([]domainResp, 0, len(out.Domains)),
	}
	for _, pl := range out.Plugins {
		resp.Plugins = append(resp.Plugins, pluginResp{ID: pl.ID, Kind: string(pl.Kind), Status: string(pl.Status)})
	}
	for _, d := range out.Domains {
		resp.Domains = append(resp.Domains, domainResp{Hostname: d.Hostname, Kind: string(d.Kind), Status: string(d.Status)})
	}
	return resp
}

package project

import "skylift/internal/model"

type CreateInput struct {
	Name        string
	Environment model.Environment
}

type CreateOutput struct {
	Project model.Project
}

type DetailOutput struct {
	Project model.Project
}

type ListOutput struct {
	Projects []model.Project
}

type StatusOutput struct {
	Project          model.Project
	ActiveDeployment *model.Deployment
	LatestDeployment *model.Deployment
	Plugins          []model.Plugin
	Domains          []model.Domain
}

package http

import (
	"skylift/internal/variable"
)

// --- Request DTOs ---

// setReq carries either discrete pairs or a raw dotenv document
// (from `variables set --from-file`).
type setReq struct {
	Pairs  map[string]string `json:"pairs"`
	Dotenv string            `json:"dotenv"`
}

func (r setReq) toInput(projectID string) variable.SetInput {
	return variable.SetInput{ProjectID: projectID, Pairs: r.Pairs}
}

func unsetInput(projectID, key string) variable.UnsetInput {
	return variable.UnsetInput{ProjectID: projectID, Key: key}
}

// --- Response DTOs ---

type setOutput struct {
	Updated int `json:"updated"`
}

type variableResp struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Injected bool   `json:"injected"`
}

type listResp struct {
	Variables []variableResp `json:"variables"`
}

type exportResp struct {
	Variables map[string]string `json:"variables"`
}

func (h *handler) newListResp(out variable.ListOutput) listResp {
	resp := listResp{Variables: make([]variableResp, 0, len(out.Variables))}
	for _, v := range out.Variables {
		resp.Variables = append(resp.Variables, variableResp{Key: v.Key, Value: v.Value, Injected: v.Injected})
	}
	return resp
}

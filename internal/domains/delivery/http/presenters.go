package http

import (
	"time"

	"skylift/internal/domains"
	"skylift/internal/model"
)

// --- Request DTOs ---

type addCustomReq struct {
	Hostname string `json:"hostname" binding:"required"`
}

func (r addCustomReq) toInput(projectID string) domains.AddCustomInput {
	return domains.AddCustomInput{ProjectID: projectID, Hostname: r.Hostname}
}

// --- Response DTOs ---

type domainResp struct {
	ID        string    `json:"id"`
	Hostname  string    `json:"hostname"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type addCustomResp struct {
	Domain domainResp `json:"domain"`
	// The DNS record to create: name + expected TXT value.
	TXTRecord string `json:"txt_record"`
	TXTValue  string `json:"txt_value"`
}

func (h *handler) newDomainResp(d model.Domain) domainResp {
	return domainResp{
		ID:        d.ID,
		Hostname:  d.Hostname,
		Kind:      string(d.Kind),
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt,
	}
}

func (h *handler) newAddCustomResp(out domains.AddCustomOutput) addCustomResp {
	return addCustomResp{
		Domain:    h.newDomainResp(out.Domain),
		TXTRecord: out.TXTRecord,
		TXTValue:  out.Domain.VerificationToken,
	}
}

func (h *handler) newListResp(ds []model.Domain) []domainResp {
	out := make([]domainResp, 0, len(ds))
	for _, d := range ds {
		out = append(out, h.newDomainResp(d))
	}
	return out
}

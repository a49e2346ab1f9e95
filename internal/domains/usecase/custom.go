package usecase

import (
	"context"
	"regexp"
	"strings"

	"skylift/internal/domains"
	"skylift/internal/domains/repository"
	"skylift/internal/model"
	"skylift/pkg/namegen"
)

// verificationPrefix is prepended to the hostname to form the TXT
// record name the owner must create.
const verificationPrefix = "_skylift-verify."

const verificationTokenLen = 24

var validHostname = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,}$`)

// AddCustom attaches a customer hostname in pending state and returns
// the TXT record to create.
func (uc *implUseCase) AddCustom(ctx context.Context, sc model.Scope, input domains.AddCustomInput) (domains.AddCustomOutput, error) {
	p, err := uc.projects.GetOwned(ctx, sc, input.ProjectID)
	if err != nil {
		return domains.AddCustomOutput{}, err
	}

	hostname := strings.ToLower(strings.TrimSpace(input.Hostname))
	if !validHostname.MatchString(hostname) {
		return domains.AddCustomOutput{}, domains.ErrInvalidHostname
	}
	if strings.HasSuffix(hostname, "."+uc.edgeCfg.Zone) || hostname == uc.edgeCfg.Zone {
		return domains.AddCustomOutput{}, domains.ErrReservedZone
	}

	existing, err := uc.repo.GetOne(ctx, repository.GetOneOptions{Hostname: hostname})
	if err != nil {
		uc.l.Errorf(ctx, "domains/usecase.AddCustom.GetOne: %v", err)
		return domains.AddCustomOutput{}, err
	}
	if existing.ID != "" {
		return domains.AddCustomOutput{}, domains.ErrAlreadyExists
	}

	d, err := uc.repo.Create(ctx, repository.CreateOptions{
		ProjectID:         p.ID,
		Hostname:          hostname,
		Kind:              model.DomainCustom,
		Status:            model.DomainStatusPending,
		VerificationToken: namegen.Suffix(verificationTokenLen),
	})
	if err != nil {
		uc.l.Errorf(ctx, "domains/usecase.AddCustom.Create: %v", err)
		return domains.AddCustomOutput{}, err
	}

	return domains.AddCustomOutput{
		Domain:    d,
		TXTRecord: verificationPrefix + hostname,
	}, nil
}

// Verify looks up the TXT record of a pending custom domain and
// activates the domain when the token matches.
func (uc *implUseCase) Verify(ctx context.Context, sc model.Scope, projectID, hostname string) (model.Domain, error) {
	p, err := uc.projects.GetOwned(ctx, sc, projectID)
	if err != nil {
		return model.Domain{}, err
	}

	d, err := uc.repo.GetOne(ctx, repository.GetOneOptions{
		ProjectID: p.ID,
		Hostname:  strings.ToLower(strings.TrimSpace(hostname)),
		Kind:      model.DomainCustom,
	})
	if err != nil {
		uc.l.Errorf(ctx, "domains/usecase.Verify.GetOne: %v", err)
		return model.Domain{}, err
	}
	if d.ID == "" {
		return model.Domain{}, domains.ErrNotFound
	}
	if d.Status == model.DomainStatusActive {
		return d, nil
	}

	records, err := uc.resolver.LookupTXT(ctx, verificationPrefix+d.Hostname)
	if err != nil {
		uc.l.Warnf(ctx, "domains/usecase.Verify.LookupTXT %s: %v", d.Hostname, err)
		return model.Domain{}, domains.ErrNotVerified
	}

	matched := false
	for _, rec := range records {
		if strings.TrimSpace(rec) == d.VerificationToken {
			matched = true
			break
		}
	}
	if !matched {
		return model.Domain{}, domains.ErrNotVerified
	}

	if err := uc.repo.UpdateStatus(ctx, d.ID, model.DomainStatusActive); err != nil {
		uc.l.Errorf(ctx, "domains/usecase.Verify.UpdateStatus: %v", err)
		return model.Domain{}, err
	}
	d.Status = model.DomainStatusActive

	uc.l.Infof(ctx, "custom domain %s verified for project %s", d.Hostname, p.ID)
	return d, nil
}

package model

import "strings"

const (
	Unknown    = "Unknown"
	NoPolicies = "No Policies"
	NoTargets  = "No Targets"
)

// ProxyRecord is one row of the "Proxy Details" sheet.
// PolicyNames/PolicyTypes and TargetNames/TargetInfos are parallel slices.
type ProxyRecord struct {
	Name        string   `json:"name"`
	PolicyNames []string `json:"policyNames"`
	PolicyTypes []string `json:"policyTypes"`
	PolicyCount int      `json:"policyCount"`
	BasePath    string   `json:"basePath"`
	TargetNames []string `json:"targetNames"`
	TargetInfos []string `json:"targetInfos"`
}

func (p ProxyRecord) Policies() string {
	return joinOr(p.PolicyNames, NoPolicies)
}

func (p ProxyRecord) PolicyTypesDisplay() string {
	return joinOr(p.PolicyTypes, Unknown)
}

func (p ProxyRecord) Targets() string {
	return joinOr(p.TargetNames, NoTargets)
}

func (p ProxyRecord) TargetInfosDisplay() string {
	return joinOr(p.TargetInfos, Unknown)
}

// SharedFlowRecord describes one shared-flow bundle.
type SharedFlowRecord struct {
	Name        string   `json:"name"`
	PolicyCount int      `json:"policyCount"`
	Policies    []string `json:"policies"`
}

func (s SharedFlowRecord) PoliciesDisplay() string {
	return joinOr(s.Policies, NoPolicies)
}

func joinOr(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, ", ")
}

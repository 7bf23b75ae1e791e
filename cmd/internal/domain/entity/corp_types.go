package entity

import (
	"encoding/json"
	"slices"
)

// CorpTypeCd is a registry corporate type code.
type CorpTypeCd string

const (
	// CorpTypeNone means the legal type is unknown.
	CorpTypeNone CorpTypeCd = ""

	CorpTypeBCCompany      CorpTypeCd = "BC"
	CorpTypeBenefitCompany CorpTypeCd = "BEN"
	CorpTypeBCCCC          CorpTypeCd = "CC"
	CorpTypeBCULCCompany   CorpTypeCd = "ULC"
	CorpTypeContinueIn     CorpTypeCd = "C"
	CorpTypeBenContinueIn  CorpTypeCd = "CBEN"
	CorpTypeCCCContinueIn  CorpTypeCd = "CCC"
	CorpTypeULCContinueIn  CorpTypeCd = "CUL"
	CorpTypeCoop           CorpTypeCd = "CP"
	CorpTypeXPro           CorpTypeCd = "A"
	CorpTypeXProCoop       CorpTypeCd = "XCP"
	CorpTypeLLC            CorpTypeCd = "LLC"
	CorpTypeLibrary        CorpTypeCd = "LIB"
	CorpTypeSociety        CorpTypeCd = "S"
	CorpTypeXProSociety    CorpTypeCd = "XS"
	CorpTypePartnership    CorpTypeCd = "GP"
	CorpTypeSoleProp       CorpTypeCd = "SP"
	CorpTypeLimPartnership CorpTypeCd = "LP"
	CorpTypeLLPartnership  CorpTypeCd = "LL"
	CorpTypeXProLimPartner CorpTypeCd = "XP"
	CorpTypeFinancial      CorpTypeCd = "FI"

	// Name request codes. They never describe a registered business.
	CorpTypeBCCorporation CorpTypeCd = "CR"
	CorpTypeNRSoleProp    CorpTypeCd = "FR"
)

// IsFirm reports whether c is a sole proprietorship or a general partnership.
func (c CorpTypeCd) IsFirm() bool {
	return c == CorpTypeSoleProp || c == CorpTypePartnership
}

func (c CorpTypeCd) MarshalJSON() ([]byte, error) {
	return marshalOptional(string(c))
}

func (c *CorpTypeCd) UnmarshalJSON(data []byte) error {
	v, err := unmarshalOptional(data)
	*c = CorpTypeCd(v)
	return err
}

type CorpInfo struct {
	CorpTypeCd CorpTypeCd `json:"corp_type_cd"`
	FullDesc   string     `json:"full_desc"`
}

// CorpInfoTable is the registry corp type reference data. Order matters:
// lookups return the first match.
var CorpInfoTable = []CorpInfo{
	{CorpTypeXPro, "Extraprovincial Company"},
	{CorpTypeBCCompany, "BC Limited Company"},
	{CorpTypeBCCorporation, "BC Limited Company"},
	{CorpTypeBenefitCompany, "BC Benefit Company"},
	{CorpTypeBCCCC, "BC Community Contribution Company"},
	{CorpTypeBCULCCompany, "BC Unlimited Liability Company"},
	{CorpTypeContinueIn, "Continuation In"},
	{CorpTypeBenContinueIn, "Benefit Company Continuation In"},
	{CorpTypeCCCContinueIn, "Community Contribution Company Continuation In"},
	{CorpTypeULCContinueIn, "Continuation In as a BC ULC"},
	{CorpTypeCoop, "BC Cooperative Association"},
	{CorpTypeXProCoop, "Extraprovincial Cooperative Association"},
	{CorpTypeFinancial, "BC Financial Institution"},
	{CorpTypeLLC, "Limited Liability Company"},
	{CorpTypeLibrary, "Public Library Association"},
	{CorpTypeSociety, "BC Society"},
	{CorpTypeXProSociety, "Extraprovincial Society"},
	{CorpTypePartnership, "BC General Partnership"},
	{CorpTypeSoleProp, "BC Sole Proprietorship"},
	{CorpTypeNRSoleProp, "BC Sole Proprietorship"},
	{CorpTypeLimPartnership, "Limited Partnership"},
	{CorpTypeLLPartnership, "Limited Liability Partnership"},
	{CorpTypeXProLimPartner, "Extraprovincial Limited Partnership"},
}

var nameRequestTypes = []CorpTypeCd{CorpTypeBCCorporation, CorpTypeNRSoleProp}

// CodeFor returns the code of the first table entry described by desc,
// or CorpTypeNone.
func CodeFor(desc string) CorpTypeCd {
	for _, info := range CorpInfoTable {
		if info.FullDesc == desc {
			return info.CorpTypeCd
		}
	}
	return CorpTypeNone
}

// DescriptionFor returns the full description of code, or "".
func DescriptionFor(code CorpTypeCd) string {
	if code == CorpTypeNone {
		return ""
	}
	for _, info := range CorpInfoTable {
		if info.CorpTypeCd == code {
			return info.FullDesc
		}
	}
	return ""
}

// CorpTypes returns the distinct descriptions of every registrable type,
// in first-seen table order.
func CorpTypes() []string {
	seen := make(map[string]bool, len(CorpInfoTable))
	descs := make([]string, 0, len(CorpInfoTable))
	for _, info := range CorpInfoTable {
		if slices.Contains(nameRequestTypes, info.CorpTypeCd) || seen[info.FullDesc] {
			continue
		}
		seen[info.FullDesc] = true
		descs = append(descs, info.FullDesc)
	}
	return descs
}

// BusinessType is a business type known to the legal API.
type BusinessType string

const (
	BusinessTypeBCLimitedCompany BusinessType = "BC"
	BusinessTypeBCULC            BusinessType = "ULC"
	BusinessTypeBenefitCompany   BusinessType = "BEN"
	BusinessTypeCCC              BusinessType = "CC"
	BusinessTypeCooperative      BusinessType = "CP"
	BusinessTypeGeneralPartner   BusinessType = "GP"
	BusinessTypeSoleProp         BusinessType = "SP"
)

// BusinessTypes is the legal API enumeration, in declaration order.
var BusinessTypes = []BusinessType{
	BusinessTypeBCLimitedCompany,
	BusinessTypeBCULC,
	BusinessTypeBenefitCompany,
	BusinessTypeCCC,
	BusinessTypeCooperative,
	BusinessTypeGeneralPartner,
	BusinessTypeSoleProp,
}

func (b BusinessType) MarshalJSON() ([]byte, error) {
	return marshalOptional(string(b))
}

// LearBusinessTypes returns BusinessTypes with the BC limited company
// slot blanked. The slot is kept so positions line up with BusinessTypes.
func LearBusinessTypes() []BusinessType {
	types := make([]BusinessType, len(BusinessTypes))
	for i, t := range BusinessTypes {
		if t != BusinessTypeBCLimitedCompany {
			types[i] = t
		}
	}
	return types
}

func marshalOptional(v string) ([]byte, error) {
	if v == "" {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

func unmarshalOptional(data []byte) (string, error) {
	if string(data) == "null" {
		return "", nil
	}
	var v string
	err := json.Unmarshal(data, &v)
	return v, err
}

package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeFor(t *testing.T) {
	assert.Equal(t, CorpTypeCoop, CodeFor("BC Cooperative Association"))
	assert.Equal(t, CorpTypeBenefitCompany, CodeFor("BC Benefit Company"))
	assert.Equal(t, CorpTypeNone, CodeFor("Cooperative"))
	assert.Equal(t, CorpTypeNone, CodeFor(""))
}

func TestCodeFor_FirstMatchWins(t *testing.T) {
	assert.Equal(t, CorpTypeBCCompany, CodeFor("BC Limited Company"))
	assert.Equal(t, CorpTypeBCULCCompany, CodeFor("BC Unlimited Liability Company"))
	assert.Equal(t, CorpTypeSoleProp, CodeFor("BC Sole Proprietorship"))
}

func TestDescriptionFor(t *testing.T) {
	assert.Equal(t, "BC Cooperative Association", DescriptionFor(CorpTypeCoop))
	assert.Equal(t, "BC Limited Company", DescriptionFor(CorpTypeBCCorporation))
	assert.Equal(t, "BC Unlimited Liability Company", DescriptionFor(CorpTypeBCULCCompany))
	assert.Equal(t, "Continuation In as a BC ULC", DescriptionFor(CorpTypeULCContinueIn))
	assert.Equal(t, "", DescriptionFor(CorpTypeCd("ZZZ")))
	assert.Equal(t, "", DescriptionFor(CorpTypeNone))
}

func TestCodeDescription_RoundTrip(t *testing.T) {
	counts := map[string]int{}
	for _, info := range CorpInfoTable {
		counts[info.FullDesc]++
	}

	for desc, n := range counts {
		if n != 1 {
			continue
		}
		t.Run(desc, func(t *testing.T) {
			assert.Equal(t, desc, DescriptionFor(CodeFor(desc)))
		})
	}
}

func TestCorpTypes(t *testing.T) {
	types := CorpTypes()

	seen := map[string]bool{}
	for _, desc := range types {
		assert.False(t, seen[desc], "duplicate description %q", desc)
		seen[desc] = true
	}

	// Descriptions shared with a name request code are still listed
	// through their registrable code.
	assert.Contains(t, types, "BC Limited Company")
	assert.Contains(t, types, "BC Sole Proprietorship")
	assert.Contains(t, types, "BC Unlimited Liability Company")
	assert.Contains(t, types, "Continuation In as a BC ULC")
	assert.Equal(t, "Extraprovincial Company", types[0])
	assert.Equal(t, "BC Limited Company", types[1])
	assert.Equal(t, "BC Benefit Company", types[2])
	assert.Equal(t, "Extraprovincial Limited Partnership", types[len(types)-1])
}

func TestCorpTypes_ExcludesNameRequestOnlyDescriptions(t *testing.T) {
	saved := CorpInfoTable
	t.Cleanup(func() { CorpInfoTable = saved })

	CorpInfoTable = []CorpInfo{
		{CorpTypeBCCorporation, "Name Request Only"},
		{CorpTypeCoop, "BC Cooperative Association"},
		{CorpTypeNRSoleProp, "NR Sole Prop"},
		{CorpTypeXProCoop, "BC Cooperative Association"},
	}

	assert.Equal(t, []string{"BC Cooperative Association"}, CorpTypes())
}

func TestLearBusinessTypes(t *testing.T) {
	types := LearBusinessTypes()

	require.Len(t, types, len(BusinessTypes))
	for i, bt := range BusinessTypes {
		if bt == BusinessTypeBCLimitedCompany {
			assert.Equal(t, BusinessType(""), types[i], "excluded slot must stay in place")
			continue
		}
		assert.Equal(t, bt, types[i])
	}
	assert.NotContains(t, types, BusinessTypeBCLimitedCompany)
}

func TestLearBusinessTypes_JSONHole(t *testing.T) {
	data, err := json.Marshal(LearBusinessTypes())
	require.NoError(t, err)
	assert.Equal(t, `[null,"ULC","BEN","CC","CP","GP","SP"]`, string(data))
}

func TestCorpTypeCd_IsFirm(t *testing.T) {
	assert.True(t, CorpTypeSoleProp.IsFirm())
	assert.True(t, CorpTypePartnership.IsFirm())
	assert.False(t, CorpTypeNRSoleProp.IsFirm())
	assert.False(t, CorpTypeNone.IsFirm())
}

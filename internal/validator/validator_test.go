package validator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automark/internal/core/domain"
	"automark/internal/core/port"
)

func validReq() port.CreateCampaignReq {
	return port.CreateCampaignReq{
		Name:           "Spring Sale",
		BusinessGoal:   "Increase sales",
		TargetAudience: "Shoppers",
		Budget:         decimal.RequireFromString("1000.50"),
		Channels:       []string{"Google Ads", "Email Marketing"},
	}
}

func TestStructValid(t *testing.T) {
	require.NoError(t, Struct(validReq()))
}

func TestStructFieldErrors(t *testing.T) {
	req := validReq()
	req.Name = ""
	req.Budget = decimal.Zero
	req.Channels = []string{"Google Ads", "TikTok"}

	err := Struct(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "This field is required", ve.Fields["name"])
	assert.Contains(t, ve.Fields, "budget")
	assert.Contains(t, ve.Fields, "channels[1]")
}

func TestStructRejectsEmptyAndDuplicateChannels(t *testing.T) {
	req := validReq()
	req.Channels = nil
	var ve *domain.ValidationError
	require.True(t, errors.As(Struct(req), &ve))
	assert.Contains(t, ve.Fields, "channels")

	req.Channels = []string{"Meta Ads", "Meta Ads"}
	require.True(t, errors.As(Struct(req), &ve))
	assert.Equal(t, "Values must be unique", ve.Fields["channels"])
}

func TestPositiveDecimal(t *testing.T) {
	tests := []struct {
		budget string
		ok     bool
	}{
		{"0.01", true},
		{"250", true},
		{"19.990", true},
		{"0", false},
		{"-5", false},
		{"1.005", false},
	}
	for _, tt := range tests {
		req := validReq()
		req.Budget = decimal.RequireFromString(tt.budget)
		err := Struct(req)
		if tt.ok {
			assert.NoError(t, err, tt.budget)
		} else {
			assert.Error(t, err, tt.budget)
		}
	}
}

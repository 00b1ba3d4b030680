package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateJWT(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name           string
		userID         int
		role           string
		expirationTime time.Time
	}{
		{
			name:           "Valid user token",
			userID:         123,
			role:           RoleUser,
			expirationTime: time.Now().Add(time.Hour),
		},
		{
			name:           "Valid admin token",
			userID:         1,
			role:           RoleFinanceAdmin,
			expirationTime: time.Now().Add(time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.userID, tt.role, tt.expirationTime)
			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name        string
		setup       func() string
		expectError bool
		wantUserID  int
		wantRole    string
	}{
		{
			name: "Valid token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(42, RoleMatchAdmin, time.Now().Add(time.Hour))
				return token
			},
			wantUserID: 42,
			wantRole:   RoleMatchAdmin,
		},
		{
			name: "Expired token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(42, RoleUser, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Garbage token",
			setup: func() string {
				return "not.a.token"
			},
			expectError: true,
		},
		{
			name: "Zero user id",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(0, RoleUser, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.setup())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantUserID, claims.UserID)
				assert.Equal(t, tt.wantRole, claims.Role)
			}
		})
	}
}

func TestHasCapability(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		capability string
		want       bool
	}{
		{name: "super admin has everything", role: RoleSuperAdmin, capability: CapUserManage, want: true},
		{name: "finance admin handles withdrawals", role: RoleFinanceAdmin, capability: CapWithdrawalHandle, want: true},
		{name: "finance admin cannot submit results", role: RoleFinanceAdmin, capability: CapResultsSubmit, want: false},
		{name: "match admin submits results", role: RoleMatchAdmin, capability: CapResultsSubmit, want: true},
		{name: "match admin cannot handle deposits", role: RoleMatchAdmin, capability: CapDepositHandle, want: false},
		{name: "match admin handles disputes", role: RoleMatchAdmin, capability: CapDisputeHandle, want: true},
		{name: "finance admin cannot handle disputes", role: RoleFinanceAdmin, capability: CapDisputeHandle, want: false},
		{name: "user has no admin capability", role: RoleUser, capability: CapDashboardView, want: false},
		{name: "unknown capability denied", role: RoleAdmin, capability: "nope", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasCapability(tt.role, tt.capability))
		})
	}
}

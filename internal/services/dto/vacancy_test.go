package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercenter_backend/internal/models"
)

func TestVacancyToDTO_NestedCompanyProfile(t *testing.T) {
	vacancy := &models.Vacancy{
		CompanyID: "company-1",
		Title:     "Backend Developer",
		Status:    models.VacancyStatusActive,
		Company: &models.User{
			CompanyName: "ТОО Рога и Копыта",
			CompanyProfile: &models.CompanyProfile{
				CompanyName: "ТОО Рога и Копыта",
				Description: "Продуктовая компания",
			},
		},
	}

	d := VacancyToDTO(vacancy)
	require.NotNil(t, d.CompanyProfiles)
	assert.Equal(t, "ТОО Рога и Копыта", d.CompanyProfiles.CompanyName)
	assert.Equal(t, "Продуктовая компания", d.CompanyProfiles.Description)

	// Фронтенд читает имя как v.company_profiles.company_name
	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	profile, ok := decoded["company_profiles"].(map[string]interface{})
	require.True(t, ok, "company_profiles должен быть вложенным объектом")
	assert.Equal(t, "ТОО Рога и Копыта", profile["company_name"])
	assert.NotContains(t, decoded, "company_name")
}

func TestVacancyToDTO_CompanyWithoutProfile(t *testing.T) {
	vacancy := &models.Vacancy{
		CompanyID: "company-1",
		Title:     "Backend Developer",
		Company:   &models.User{CompanyName: "ТОО Рога и Копыта"},
	}

	d := VacancyToDTO(vacancy)
	require.NotNil(t, d.CompanyProfiles)
	assert.Equal(t, "ТОО Рога и Копыта", d.CompanyProfiles.CompanyName)
	assert.Empty(t, d.CompanyProfiles.Description)
}

func TestVacancyToDTO_CompanyNotLoaded(t *testing.T) {
	vacancy := &models.Vacancy{CompanyID: "company-1", Title: "Backend Developer"}

	d := VacancyToDTO(vacancy)
	assert.Nil(t, d.CompanyProfiles)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "company_profiles")
}

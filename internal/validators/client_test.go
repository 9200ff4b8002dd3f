package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClient_AllMissing(t *testing.T) {
	errs := ValidateClient(ClientInput{})
	assert.Len(t, errs, 5)
}

func TestValidateClient_CategoryGNeedsRegistration(t *testing.T) {
	errs := ValidateClient(ClientInput{
		FullName: "María Paucar",
		Phone:    "+1 718 555 0101",
		Address:  "Queens, NY",
		IDNumber: "0912345678",
		Category: "G",
	})
	assert.Equal(t, []string{"Número de registro consular es requerido para categoría G"}, errs)
}

func TestValidateClient_OK(t *testing.T) {
	errs := ValidateClient(ClientInput{
		FullName: "María Paucar",
		Phone:    "+1 718 555 0101",
		Address:  "Queens, NY",
		IDNumber: "0912345678",
		Category: "B",
	})
	assert.Empty(t, errs)
}

func TestValidateFamilyMember(t *testing.T) {
	errs := ValidateFamilyMember(FamilyMemberInput{})
	assert.Len(t, errs, 7)

	errs = ValidateFamilyMember(FamilyMemberInput{
		Name:         "Rosa Paucar",
		Relationship: "madre",
		EcuadorianID: "0401122334",
		Phone:        "+593 99 555 0102",
		Address:      "Av. Amazonas y Colón",
		City:         "Quito",
		Province:     "Pichincha",
	})
	assert.Empty(t, errs)
}

package validators

import "strings"

type ClientInput struct {
	FullName                   string
	Phone                      string
	Address                    string
	IDNumber                   string
	Category                   string
	ConsularRegistrationNumber string
}

// ValidateClient junta todos los errores en una sola lista para que el
// mostrador los muestre de una vez.
func ValidateClient(in ClientInput) []string {
	var errs []string

	if strings.TrimSpace(in.FullName) == "" {
		errs = append(errs, "Nombre completo es requerido")
	}
	if strings.TrimSpace(in.Phone) == "" {
		errs = append(errs, "Teléfono es requerido")
	}
	if strings.TrimSpace(in.Address) == "" {
		errs = append(errs, "Dirección es requerida")
	}
	if strings.TrimSpace(in.IDNumber) == "" {
		errs = append(errs, "Número de identificación es requerido")
	}
	if in.Category != "B" && in.Category != "G" {
		errs = append(errs, "Categoría debe ser B o G")
	}
	if in.Category == "G" && strings.TrimSpace(in.ConsularRegistrationNumber) == "" {
		errs = append(errs, "Número de registro consular es requerido para categoría G")
	}

	return errs
}

type FamilyMemberInput struct {
	Name         string
	Relationship string
	EcuadorianID string
	Phone        string
	Address      string
	City         string
	Province     string
}

func ValidateFamilyMember(in FamilyMemberInput) []string {
	var errs []string

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, "Nombre del familiar es requerido")
	}
	if strings.TrimSpace(in.Relationship) == "" {
		errs = append(errs, "Parentesco es requerido")
	}
	if strings.TrimSpace(in.EcuadorianID) == "" {
		errs = append(errs, "Cédula ecuatoriana es requerida")
	}
	if strings.TrimSpace(in.Phone) == "" {
		errs = append(errs, "Teléfono es requerido")
	}
	if strings.TrimSpace(in.Address) == "" {
		errs = append(errs, "Dirección es requerida")
	}
	if strings.TrimSpace(in.City) == "" {
		errs = append(errs, "Ciudad es requerida")
	}
	if strings.TrimSpace(in.Province) == "" {
		errs = append(errs, "Provincia es requerida")
	}

	return errs
}

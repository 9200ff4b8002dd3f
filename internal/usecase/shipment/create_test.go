package shipment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/familyexpressec/courier-api/internal/domain/shipment"
	"github.com/familyexpressec/courier-api/internal/httperr"
	"github.com/familyexpressec/courier-api/internal/models"
	"github.com/familyexpressec/courier-api/internal/tracking"
)

func seedClient(repo *fakeRepo) *models.Client {
	c := &models.Client{
		FullName: "María Fernanda López",
		Phone:    "+1 305 555 0147",
		Category: "B",
	}
	c.ID = 1
	repo.clients[c.ID] = c
	return c
}

func validInput(clientID uint) CreateShipmentInput {
	return CreateShipmentInput{
		ClientID: clientID,
		Recipient: RecipientInput{
			Name:     "Rosa López",
			Phone:    "0991234567",
			Address:  "Av. 9 de Octubre y Malecón",
			City:     "Guayaquil",
			Province: "Guayas",
			IDNumber: "0912345678",
		},
		Category:      "B",
		Items:         []string{"Ropa", "Zapatos"},
		DeclaredValue: 100,
		WeightLb:      5,
	}
}

func TestCreateShipment_HappyPath(t *testing.T) {
	repo := newFakeRepo()
	client := seedClient(repo)

	uc := NewCreateShipment(repo, tracking.NewGenerator(repo, "FE"), nil)

	sh, err := uc.Execute(context.Background(), 7, validInput(client.ID))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sh.TrackingCode, "FE-"))
	assert.True(t, strings.HasSuffix(sh.TrackingCode, "-0001"))

	assert.Equal(t, client.ID, sh.ClientID)
	assert.Equal(t, client.FullName, sh.ClientName)
	assert.Equal(t, string(domain.StatusPending), sh.Status)

	// Cotización del ejemplo: 5 lb categoría B con $100 declarados.
	assert.InDelta(t, 20.00, sh.Costs.Shipping, 0.001)
	assert.InDelta(t, 20.00, sh.Costs.CourierTax, 0.001)
	assert.InDelta(t, 0.50, sh.Costs.Fodinfa, 0.001)
	assert.InDelta(t, 40.50, sh.Costs.Total, 0.001)

	// Sin monto explícito se cobra el total cotizado, pagado al contado.
	assert.InDelta(t, 40.50, sh.Payment.Amount, 0.001)
	assert.Equal(t, "cash", sh.Payment.Method)
	assert.True(t, sh.Payment.Paid)
	require.NotNil(t, sh.Payment.PaidAt)

	// Primera entrada del historial, con los valores de mostrador.
	require.Len(t, repo.events, 1)
	ev := repo.events[0]
	assert.Equal(t, sh.TrackingCode, ev.TrackingCode)
	assert.Equal(t, string(domain.StatusPending), ev.Status)
	assert.Equal(t, "USA", ev.Location)
	assert.Equal(t, "Paquete registrado y pagado", ev.Note)
}

func TestCreateShipment_PaymentOverride(t *testing.T) {
	repo := newFakeRepo()
	client := seedClient(repo)

	uc := NewCreateShipment(repo, tracking.NewGenerator(repo, "FE"), nil)

	in := validInput(client.ID)
	amount := 45.00
	in.PaymentAmount = &amount
	in.PaymentMethod = "transfer"

	sh, err := uc.Execute(context.Background(), 7, in)
	require.NoError(t, err)

	assert.InDelta(t, 45.00, sh.Payment.Amount, 0.001)
	assert.Equal(t, "transfer", sh.Payment.Method)
	// El costo cotizado no cambia aunque se cobre otro monto.
	assert.InDelta(t, 40.50, sh.Costs.Total, 0.001)
}

func TestCreateShipment_NegativePaymentRejected(t *testing.T) {
	repo := newFakeRepo()
	client := seedClient(repo)

	uc := NewCreateShipment(repo, tracking.NewGenerator(repo, "FE"), nil)

	in := validInput(client.ID)
	amount := -5.00
	in.PaymentAmount = &amount

	_, err := uc.Execute(context.Background(), 7, in)
	require.Error(t, err)

	var ve httperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Messages, "Monto cobrado no puede ser negativo")

	// Un cobro negativo distorsionaría los acumulados de ingresos.
	assert.Empty(t, repo.shipments)
}

func TestCreateShipment_FamilyMemberSnapshot(t *testing.T) {
	repo := newFakeRepo()
	client := seedClient(repo)

	member := &models.FamilyMember{
		ClientID:     client.ID,
		Name:         "Carlos López",
		Phone:        "0987654321",
		Address:      "Calle Larga 12-34",
		City:         "Cuenca",
		Province:     "Azuay",
		EcuadorianID: "0102030405",
	}
	member.ID = 9
	repo.members[member.ID] = member

	uc := NewCreateShipment(repo, tracking.NewGenerator(repo, "FE"), nil)

	in := validInput(client.ID)
	in.FamilyMemberID = &member.ID
	in.Recipient = RecipientInput{} // debe salir del familiar, no del form

	sh, err := uc.Execute(context.Background(), 7, in)
	require.NoError(t, err)

	assert.Equal(t, "Carlos López", sh.Recipient.Name)
	assert.Equal(t, "Cuenca", sh.Recipient.City)
	assert.Equal(t, "0102030405", sh.Recipient.IDNumber)

	// El envío guarda copia: editar el familiar no toca el histórico.
	member.City = "Loja"
	assert.Equal(t, "Cuenca", sh.Recipient.City)
}

func TestCreateShipment_FamilyMemberOfAnotherClient(t *testing.T) {
	repo := newFakeRepo()
	client := seedClient(repo)

	member := &models.FamilyMember{ClientID: 99, Name: "Ajeno"}
	member.ID = 4
	repo.members[member.ID] = member

	uc := NewCreateShipment(repo, tracking.NewGenerator(repo, "FE"), nil)

	in := validInput(client.ID)
	in.FamilyMemberID = &member.ID

	_, err := uc.Execute(context.Background(), 7, in)
	require.Error(t, err)

	var be httperr.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "family_member_not_found", be.Code)
}

func TestCreateShipment_ClientNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateShipment(repo, tracking.NewGenerator(repo, "FE"), nil)

	_, err := uc.Execute(context.Background(), 7, validInput(42))
	require.Error(t, err)

	var be httperr.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "client_not_found", be.Code)
}

func TestCreateShipment_ValidationCollectsAllMessages(t *testing.T) {
	repo := newFakeRepo()
	client := seedClient(repo)

	uc := NewCreateShipment(repo, tracking.NewGenerator(repo, "FE"), nil)

	in := CreateShipmentInput{
		ClientID:      client.ID,
		Category:      "X",
		Items:         nil,
		DeclaredValue: 0,
	}

	_, err := uc.Execute(context.Background(), 7, in)
	require.Error(t, err)

	var ve httperr.ValidationError
	require.ErrorAs(t, err, &ve)

	assert.Contains(t, ve.Messages, "Categoría debe ser B o G")
	assert.Contains(t, ve.Messages, "Debe seleccionar al menos un artículo")
	assert.Contains(t, ve.Messages, "Valor declarado debe ser mayor a 0")
	assert.Contains(t, ve.Messages, "Nombre del destinatario es requerido")
	assert.Contains(t, ve.Messages, "Teléfono del destinatario es requerido")
	assert.Contains(t, ve.Messages, "Dirección del destinatario es requerida")

	// Nada quedó escrito.
	assert.Empty(t, repo.shipments)
	assert.Empty(t, repo.events)
}

func TestCreateShipment_DeclaredValueCeiling(t *testing.T) {
	repo := newFakeRepo()
	client := seedClient(repo)

	uc := NewCreateShipment(repo, tracking.NewGenerator(repo, "FE"), nil)

	in := validInput(client.ID)
	in.DeclaredValue = 400.01

	_, err := uc.Execute(context.Background(), 7, in)
	require.Error(t, err)

	var ve httperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Messages, "Valor declarado no puede exceder $400 USD")
}

func TestCreateShipment_SequentialCodesPerDay(t *testing.T) {
	repo := newFakeRepo()
	client := seedClient(repo)

	uc := NewCreateShipment(repo, tracking.NewGenerator(repo, "FE"), nil)

	first, err := uc.Execute(context.Background(), 7, validInput(client.ID))
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), 7, validInput(client.ID))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(first.TrackingCode, "-0001"))
	assert.True(t, strings.HasSuffix(second.TrackingCode, "-0002"))
	assert.NotEqual(t, first.TrackingCode, second.TrackingCode)
}

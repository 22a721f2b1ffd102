package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AliHaider728/royal-palm-map-clone/internal/dtos"
	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (n *recordingNotifier) NotifyInquiry(_ context.Context, dealer *models.Profile, property *models.Property, inq *models.Inquiry) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, dealer.DisplayName()+"|"+property.Title+"|"+inq.Name)
	return n.err
}

func TestCreateInquiry(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	owner, _ := f.dealer(t, "inq@example.com")
	p, err := f.property.Create(ctx, owner, createReq("Villa", utils.Ptr(32.1), utils.Ptr(74.1)))
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	svc := NewInquiryService(f.inquiries, f.property, notifier, true)

	inq, err := svc.Create(ctx, dtos.CreateInquiryRequest{
		PropertyID: p.ID.String(),
		Name:       "  Bilal  ",
		Phone:      utils.StrPtr("0300 1112223"),
		Message:    utils.StrPtr("   "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Bilal", inq.Name)
	assert.Nil(t, inq.Message)

	got, err := f.props.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.InquiriesCount)
	assert.Equal(t, []string{"Raza Estates|Villa|Bilal"}, notifier.calls)

	list, err := svc.ListByDealer(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Villa", list[0].PropertyTitle)
}

func TestCreateInquiryNotifierFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	owner, _ := f.dealer(t, "loud@example.com")
	p, err := f.property.Create(ctx, owner, createReq("Villa", nil, nil))
	require.NoError(t, err)

	svc := NewInquiryService(f.inquiries, f.property, &recordingNotifier{err: errors.New("smtp down")}, true)
	_, err = svc.Create(ctx, dtos.CreateInquiryRequest{PropertyID: p.ID.String(), Name: "Bilal"})
	assert.NoError(t, err)
}

func TestCreateInquiryFlagOffSkipsNotifier(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	owner, _ := f.dealer(t, "quiet@example.com")
	p, err := f.property.Create(ctx, owner, createReq("Villa", nil, nil))
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	svc := NewInquiryService(f.inquiries, f.property, notifier, false)
	_, err = svc.Create(ctx, dtos.CreateInquiryRequest{PropertyID: p.ID.String(), Name: "Bilal"})
	require.NoError(t, err)
	assert.Empty(t, notifier.calls)
}

func TestCreateInquiryUnknownProperty(t *testing.T) {
	f := newFixture(t, nil)
	svc := NewInquiryService(f.inquiries, f.property, nil, false)

	_, err := svc.Create(context.Background(), dtos.CreateInquiryRequest{PropertyID: uuid.NewString(), Name: "x"})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrStatus(t, err))

	_, err = svc.Create(context.Background(), dtos.CreateInquiryRequest{PropertyID: "nope", Name: "x"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrStatus(t, err))
}

package commands

import (
	"errors"
	"fmt"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
)

// slotAddress names one slot by its weekday position.
type slotAddress struct {
	accountID kernel.UUID
	weekday   kernel.Weekday
	index     int
}

func newSlotAddress(accountID kernel.UUID, weekday kernel.Weekday, index int) (slotAddress, error) {
	var indexErr error
	if index < 0 {
		indexErr = errs.NewValueIsInvalidErrorWithCause("index", fmt.Errorf("%d is negative", index))
	}
	if err := errors.Join(accountID.Validate(), weekday.Validate(), indexErr); err != nil {
		return slotAddress{}, err
	}

	return slotAddress{
		accountID: accountID,
		weekday:   weekday,
		index:     index,
	}, nil
}

func (a slotAddress) AccountID() kernel.UUID {
	return a.accountID
}

func (a slotAddress) Weekday() kernel.Weekday {
	return a.weekday
}

func (a slotAddress) Index() int {
	return a.index
}

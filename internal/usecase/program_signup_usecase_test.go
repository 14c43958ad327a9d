package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CareMap-App/internal/domain/model"
)

func TestAcknowledge(t *testing.T) {
	u := &programSignupUseCaseImpl{newID: func() string { return "receipt-1" }}

	receipt, err := u.Acknowledge(&model.SignupRequest{
		ApplicantName: " 김민수 ",
		CenterName:    "회기 건강센터",
		ProgramName:   "우울증 상담",
		Message:       "오후 참여 희망",
	})
	require.NoError(t, err)

	assert.Equal(t, &model.SignupReceipt{
		ReceiptID:     "receipt-1",
		ApplicantName: "김민수",
		CenterName:    "회기 건강센터",
		ProgramName:   "우울증 상담",
		Message:       "김민수님, 회기 건강센터의 '우울증 상담' 프로그램 신청이 접수되었습니다.",
		Persisted:     false,
	}, receipt)
}

func TestAcknowledge_Invalid(t *testing.T) {
	u := NewProgramSignupUseCase()

	_, err := u.Acknowledge(nil)
	assert.ErrorIs(t, err, model.ErrInvalidSignup)

	_, err = u.Acknowledge(&model.SignupRequest{ApplicantName: "김민수", CenterName: " "})
	require.ErrorIs(t, err, model.ErrInvalidSignup)
	assert.Contains(t, err.Error(), "center_name, program_name")
}

func TestNewProgramSignupUseCase_UniqueIDs(t *testing.T) {
	u := NewProgramSignupUseCase()
	req := &model.SignupRequest{ApplicantName: "가", CenterName: "나", ProgramName: "다"}

	r1, err := u.Acknowledge(req)
	require.NoError(t, err)
	r2, err := u.Acknowledge(req)
	require.NoError(t, err)
	assert.NotEqual(t, r1.ReceiptID, r2.ReceiptID)
}

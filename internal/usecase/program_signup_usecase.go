package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"CareMap-App/internal/domain/model"
	"CareMap-App/internal/metrics"
)

type ProgramSignupUseCase interface {
	// Acknowledge は申込内容を検証し、受付メッセージを返す（どこにも保存しない）
	Acknowledge(req *model.SignupRequest) (*model.SignupReceipt, error)
}

// programSignupUseCaseImpl はProgramSignupUseCaseの実装
type programSignupUseCaseImpl struct {
	newID func() string
}

// NewProgramSignupUseCase は新しいProgramSignupUseCaseインスタンスを作成
func NewProgramSignupUseCase() ProgramSignupUseCase {
	return &programSignupUseCaseImpl{
		newID: func() string { return uuid.New().String() },
	}
}

func (u *programSignupUseCaseImpl) Acknowledge(req *model.SignupRequest) (*model.SignupReceipt, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: リクエストが空です", model.ErrInvalidSignup)
	}
	name := strings.TrimSpace(req.ApplicantName)
	center := strings.TrimSpace(req.CenterName)
	program := strings.TrimSpace(req.ProgramName)

	var missing []string
	if name == "" {
		missing = append(missing, "applicant_name")
	}
	if center == "" {
		missing = append(missing, "center_name")
	}
	if program == "" {
		missing = append(missing, "program_name")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: 必須項目が未入力です: %s", model.ErrInvalidSignup, strings.Join(missing, ", "))
	}

	metrics.SignupsTotal.Inc()
	return &model.SignupReceipt{
		ReceiptID:     u.newID(),
		ApplicantName: name,
		CenterName:    center,
		ProgramName:   program,
		Message:       fmt.Sprintf("%s님, %s의 '%s' 프로그램 신청이 접수되었습니다.", name, center, program),
		Persisted:     false,
	}, nil
}

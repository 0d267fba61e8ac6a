package service

import (
	"errors"
	"fmt"

	"seller_landing/internal/leadform/ports"
)

// Category classifies the outcome of a submission. The values double as
// metric labels.
type Category string

const (
	CategoryAccepted           Category = "accepted"
	CategoryMissingFields      Category = "missing_fields"
	CategoryMalformedRequest   Category = "malformed_request"
	CategoryConfigMissing      Category = "config_missing"
	CategoryCredentialsMissing Category = "credentials_missing"
	CategoryCredentialsInvalid Category = "credentials_invalid"
	CategoryPermissionDenied   Category = "permission_denied"
	CategoryTargetNotFound     Category = "target_not_found"
	CategoryUnknown            Category = "unknown"
)

const (
	MsgSuccess            = "상담 신청이 성공적으로 접수되었습니다.\n평일 영업일 기준 24시간 내 담당자가 연락드리겠습니다."
	MsgRequiredFields     = "이름과 핸드폰 번호는 필수입니다."
	MsgMalformedRequest   = "잘못된 요청입니다."
	MsgConfigMissing      = "Google Sheet configuration is missing."
	MsgCredentialsMissing = "서버 설정 오류: Google API 인증 정보가 설정되지 않았습니다."
	MsgCredentialsInvalid = "서버 설정 오류: Google API 인증 정보가 잘못되었습니다."
	MsgPermissionDenied   = "Google Sheet에 접근 권한이 없습니다. 서비스 계정에 편집자 권한을 부여했는지 확인해주세요."
	MsgTargetNotFoundFmt  = "Google Sheet ID (%s) 또는 시트 이름 (%s)을 찾을 수 없습니다. 확인해주세요."
	MsgUnknown            = "오류가 발생했습니다. 다시 시도해주세요."

	ConsentGiven   = "동의함"
	ConsentRefused = "미동의"
)

var errConfigMissing = errors.New("SPREADSHEET_ID is not configured")

// Classify maps an appender error to its category.
func Classify(err error) Category {
	switch {
	case err == nil:
		return CategoryAccepted
	case errors.Is(err, ports.ErrCredentialsMissing):
		return CategoryCredentialsMissing
	case errors.Is(err, ports.ErrCredentialsInvalid):
		return CategoryCredentialsInvalid
	case errors.Is(err, ports.ErrPermissionDenied):
		return CategoryPermissionDenied
	case errors.Is(err, ports.ErrTargetNotFound):
		return CategoryTargetNotFound
	default:
		return CategoryUnknown
	}
}

// MessageFor returns the visitor-facing message for a failure category.
func MessageFor(category Category, target ports.Target) string {
	switch category {
	case CategoryMissingFields:
		return MsgRequiredFields
	case CategoryMalformedRequest:
		return MsgMalformedRequest
	case CategoryConfigMissing:
		return MsgConfigMissing
	case CategoryCredentialsMissing:
		return MsgCredentialsMissing
	case CategoryCredentialsInvalid:
		return MsgCredentialsInvalid
	case CategoryPermissionDenied:
		return MsgPermissionDenied
	case CategoryTargetNotFound:
		return fmt.Sprintf(MsgTargetNotFoundFmt, target.SpreadsheetID, target.SheetName)
	default:
		return MsgUnknown
	}
}

func consentLabel(privacy bool) string {
	if privacy {
		return ConsentGiven
	}
	return ConsentRefused
}

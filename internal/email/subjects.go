package email

import "fmt"

const subjectLeadNotificationFmt = "[상세페이지 진단] 새 상담 신청: %s"

func leadNotificationSubject(lead Lead) string {
	return fmt.Sprintf(subjectLeadNotificationFmt, lead.Name)
}

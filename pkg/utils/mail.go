package utils

import (
	"fmt"
	"os"

	"github.com/mailjet/mailjet-apiv3-go/v4"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"reward_wallet_back/models"
)

// NotifyNewWithdrawal mails the payout operator about a fresh request.
// Best effort: failures are logged and never reach the caller.
func NotifyNewWithdrawal(telegramID int64, w models.Withdrawal) {
	if os.Getenv("MAILJET_API_KEY") != "" && os.Getenv("MAILJET_SECRET_KEY") != "" {
		sendMailMailjet(telegramID, w)
		return
	}
	sendMailSMTP(telegramID, w)
}

func withdrawalMailBody(telegramID int64, w models.Withdrawal) string {
	return fmt.Sprintf(`<body style="margin:0;padding:0;background:#f6f6f6;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width:600px;background:#f3f2f0;border-radius:28px;">
    <tr>
      <td style="padding:32px;text-align:left;font-family:Arial,sans-serif;">
        <h1 style="margin:0 0 12px 0;font-size:28px;color:#111;">New withdrawal request</h1>
        <p style="margin:0 0 24px 0;font-size:18px;color:#222;">A user has requested a payout.</p>
        <table cellpadding="0" cellspacing="0" border="0" style="width:100%%;font-size:16px;">
          <tr><td style="color:#555;padding:6px 0;">Telegram ID:</td><td style="color:#111;font-weight:bold;">%d</td></tr>
          <tr><td style="color:#555;padding:6px 0;">Amount (BDT):</td><td style="color:#111;font-weight:bold;">%s</td></tr>
          <tr><td style="color:#555;padding:6px 0;">Fee (BDT):</td><td style="color:#111;font-weight:bold;">%s</td></tr>
          <tr><td style="color:#555;padding:6px 0;">Method:</td><td style="color:#111;font-weight:bold;">%s</td></tr>
          <tr><td style="color:#555;padding:6px 0;">Recipient:</td><td style="color:#111;font-weight:bold;">%s</td></tr>
        </table>
      </td>
    </tr>
  </table>
</body>`, telegramID, w.Amount.String(), w.Fee.String(), w.Method, w.Recipient)
}

func sendMailMailjet(telegramID int64, w models.Withdrawal) {
	fromEmail := os.Getenv("OPS_MAIL_FROM")
	toEmail := os.Getenv("OPS_MAIL_TO")
	if fromEmail == "" || toEmail == "" {
		logrus.Warn("OPS_MAIL_FROM or OPS_MAIL_TO not set, skipping withdrawal mail")
		return
	}

	mj := mailjet.NewMailjetClient(os.Getenv("MAILJET_API_KEY"), os.Getenv("MAILJET_SECRET_KEY"))
	messagesInfo := []mailjet.InfoMessagesV31{
		{
			From: &mailjet.RecipientV31{
				Email: fromEmail,
				Name:  "Withdrawals",
			},
			To: &mailjet.RecipientsV31{
				{
					Email: toEmail,
				},
			},
			Subject:  "New withdrawal request",
			HTMLPart: withdrawalMailBody(telegramID, w),
		},
	}
	messages := &mailjet.MessagesV31{Info: messagesInfo}
	if _, err := mj.SendMailV31(messages); err != nil {
		logrus.Errorf("mailjet send failed: %s", err)
	}
}

func sendMailSMTP(telegramID int64, w models.Withdrawal) {
	from := os.Getenv("OPS_MAIL_FROM")
	to := os.Getenv("OPS_MAIL_TO")
	password := os.Getenv("GMAIL_APP_PASSWORD")
	if from == "" || to == "" || password == "" {
		logrus.Warn("SMTP mail not configured, skipping withdrawal mail")
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "New withdrawal request")
	m.SetBody("text/html", withdrawalMailBody(telegramID, w))

	d := gomail.NewDialer("smtp.gmail.com", 587, from, password)
	if err := d.DialAndSend(m); err != nil {
		logrus.Errorf("smtp send failed: %s", err)
	}
}

package notify

import (
	"fmt"

	"github.com/onboardflow/onboardflow/internal/models"
)

func formatAmount(minorUnits int64) string {
	return fmt.Sprintf("$%.2f", float64(minorUnits)/100)
}

// MagicLinkReady tells the photographer their client link is live.
func MagicLinkReady(photographerEmail, magicLink string) Email {
	return Email{
		To:      photographerEmail,
		Subject: "Your Magic Link is Ready!",
		HTML: fmt.Sprintf(`<h2>Your Magic Link is Ready! ✨</h2>
<p>I've created a magic link for your client. Just send them this:</p>
<p><a href="%s">%s</a></p>
<p><strong>What happens next:</strong></p>
<ol>
<li>Client clicks link</li>
<li>Client reviews and signs contract</li>
<li>Client pays deposit</li>
<li>You get notified (I'll email you)</li>
</ol>
<p>That's it! You can focus on photography now.</p>
<p>Best,<br>Your Invisible Assistant</p>`, magicLink, magicLink),
	}
}

// ContractSigned tells the photographer the client signed.
func ContractSigned(photographerEmail string, project models.Project) Email {
	return Email{
		To:      photographerEmail,
		Subject: "✅ Contract Signed!",
		HTML: fmt.Sprintf(`<h2>Great news! Your client just signed the contract.</h2>
<p><strong>Client:</strong> %s</p>
<p><strong>Project:</strong> %s</p>
<p><strong>Deposit:</strong> %s</p>
<p>I've automatically sent them the payment link. You'll get another email when they pay.</p>
<p>No action needed from you. Just focus on the creative work! 🎨</p>
<br>
<p>Best,<br>Your Invisible Assistant</p>`, project.ClientEmail, project.Name, formatAmount(project.Amount)),
	}
}

// PaymentReceived tells the photographer the deposit arrived.
func PaymentReceived(photographerEmail string, project models.Project) Email {
	return Email{
		To:      photographerEmail,
		Subject: "💰 Payment Received!",
		HTML: fmt.Sprintf(`<h2>Payment Received! 🎉</h2>
<p><strong>Client:</strong> %s</p>
<p><strong>Project:</strong> %s</p>
<p><strong>Amount:</strong> %s</p>
<p>The booking is now confirmed! Time to focus on creating amazing photos.</p>
<br>
<p>Need anything else? Just reply to this email.</p>
<br>
<p>Best,<br>Your Invisible Assistant</p>`, project.ClientEmail, project.Name, formatAmount(project.Amount)),
	}
}

// BookingConfirmed tells the client their booking is locked in.
func BookingConfirmed(project models.Project) Email {
	return Email{
		To:      project.ClientEmail,
		Subject: "Booking Confirmed!",
		HTML: fmt.Sprintf(`<h2>Thank you for your payment! 🎉</h2>
<p>Your booking for <strong>%s</strong> is now confirmed.</p>
<p>The photographer will be in touch with you soon to discuss next steps.</p>
<br>
<p>Best regards,<br>The OnboardFlow Assistant</p>`, project.Name),
	}
}

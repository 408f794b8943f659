package notify

import (
	"fmt"

	"github.com/portalteam/client-portal/internal/core/domain"
)

const adminAccessBlurb = `<div style="background: #fff3cd; padding: 15px; border-radius: 8px; border-left: 4px solid #ffc107; margin: 20px 0;"><p style="margin: 0; color: #856404;"><strong>Admin Access:</strong> You have full access to manage users and clients in the system.</p></div>`

const clientAccessBlurb = `<div style="background: #d1ecf1; padding: 15px; border-radius: 8px; border-left: 4px solid #17a2b8; margin: 20px 0;"><p style="margin: 0; color: #0c5460;"><strong>Client Access:</strong> You can view and manage your business information through our portal.</p></div>`

// WelcomeEmailHTML renders the fixed welcome template with the new
// account's name, business, and role.
func WelcomeEmailHTML(name, business, role string) string {
	roleLabel := "Client"
	accessBlurb := clientAccessBlurb
	if role == domain.RoleAdmin {
		roleLabel = "Administrator"
		accessBlurb = adminAccessBlurb
	}

	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background: #f9f9f9;">
      <div style="background: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1);">
        <h2 style="color: #333; text-align: center; margin-bottom: 30px;">Welcome to Our Portal!</h2>

        <p style="font-size: 16px; color: #555;">Hi <strong>%s</strong>,</p>

        <p style="font-size: 16px; color: #555;">Your account has been successfully created! Here are your details:</p>

        <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 25px 0; border-left: 4px solid #007bff;">
          <p style="margin: 8px 0;"><strong>Name:</strong> %s</p>
          <p style="margin: 8px 0;"><strong>Business:</strong> %s</p>
          <p style="margin: 8px 0;"><strong>Role:</strong> %s</p>
        </div>

        %s

        <p style="font-size: 16px; color: #555;">You can now log in to your account using your email and password.</p>

        <div style="text-align: center; margin: 30px 0;">
          <a href="http://localhost:3000/login"
             style="background: #007bff; color: white; padding: 15px 30px; text-decoration: none; border-radius: 8px; display: inline-block; font-weight: bold; font-size: 16px;">
            Login to Portal
          </a>
        </div>

        <div style="border-top: 1px solid #eee; padding-top: 20px; margin-top: 30px;">
          <p style="font-size: 14px; color: #666;">If you have any questions, please don't hesitate to contact our support team.</p>
          <p style="font-size: 14px; color: #666;">Best regards,<br><strong>The Portal Team</strong></p>
        </div>
      </div>
    </div>
  `, name, name, business, roleLabel, accessBlurb)
}

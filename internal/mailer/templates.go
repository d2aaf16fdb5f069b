package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/models"
)

// NewsletterData feeds the per-article newsletter template.
type NewsletterData struct {
	SiteName   string
	Title      string
	Excerpt    string
	Author     string
	Category   string
	ImageURL   string
	ReadTime   int
	ArticleURL string
	BaseURL    string
	Year       int
}

// WelcomeData feeds the welcome template sent to new subscribers.
type WelcomeData struct {
	SiteName string
	BaseURL  string
	Year     int
}

var newsletterTmpl = template.Must(template.New("newsletter").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>New Article: {{.Title}}</title>
  </head>
  <body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f8fafc;">
    <table width="100%" cellpadding="0" cellspacing="0" style="background-color: #f8fafc; padding: 40px 20px;">
      <tr>
        <td align="center">
          <table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden;">
            <tr>
              <td style="background-color: #0f172a; padding: 30px; text-align: center;">
                <h1 style="color: #f97316; margin: 0; font-size: 28px; font-weight: bold;">{{.SiteName}}</h1>
                <p style="color: #e2e8f0; margin: 10px 0 0 0; font-size: 14px;">Latest Tech News &amp; Insights</p>
              </td>
            </tr>
            <tr>
              <td style="padding: 0;">
                <img src="{{.ImageURL}}" alt="{{.Title}}" style="width: 100%; height: 300px; object-fit: cover; display: block;" />
              </td>
            </tr>
            <tr>
              <td style="padding: 40px 30px;">
                <div style="background-color: #f97316; display: inline-block; padding: 6px 12px; border-radius: 4px; margin-bottom: 16px;">
                  <span style="color: #ffffff; font-size: 12px; font-weight: 600; text-transform: uppercase;">{{.Category}}</span>
                </div>
                <h2 style="color: #0f172a; margin: 0 0 16px 0; font-size: 24px; line-height: 1.4;">{{.Title}}</h2>
                <p style="color: #64748b; margin: 0 0 24px 0; font-size: 16px; line-height: 1.6;">{{.Excerpt}}</p>
                <div style="margin-bottom: 24px;">
                  <span style="color: #334155; font-size: 14px;">By {{.Author}}</span>
                  <span style="color: #94a3b8; margin: 0 8px;">&bull;</span>
                  <span style="color: #334155; font-size: 14px;">{{.ReadTime}} min read</span>
                </div>
                <a href="{{.ArticleURL}}" style="display: inline-block; background-color: #f97316; color: #ffffff; padding: 14px 32px; text-decoration: none; border-radius: 6px; font-weight: 600; font-size: 16px;">
                  Read Full Article
                </a>
              </td>
            </tr>
            <tr>
              <td style="background-color: #f8fafc; padding: 30px; text-align: center; border-top: 1px solid #e2e8f0;">
                <p style="color: #64748b; margin: 0 0 12px 0; font-size: 14px;">
                  You're receiving this because you subscribed to {{.SiteName}} Newsletter
                </p>
                <p style="color: #94a3b8; margin: 0; font-size: 12px;">&copy; {{.Year}} {{.SiteName}}. All rights reserved.</p>
                <p style="margin: 12px 0 0 0;">
                  <a href="{{.BaseURL}}/unsubscribe" style="color: #94a3b8; font-size: 12px; text-decoration: underline;">Unsubscribe</a>
                </p>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>
`))

var welcomeTmpl = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Welcome to {{.SiteName}} Newsletter!</title>
  </head>
  <body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f8fafc;">
    <table width="100%" cellpadding="0" cellspacing="0" style="background-color: #f8fafc; padding: 40px 20px;">
      <tr>
        <td align="center">
          <table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden;">
            <tr>
              <td style="background-color: #0f172a; padding: 40px 30px; text-align: center;">
                <h1 style="color: #f97316; margin: 0 0 10px 0; font-size: 32px; font-weight: bold;">Welcome to {{.SiteName}}!</h1>
                <p style="color: #e2e8f0; margin: 0; font-size: 16px;">Your Gateway to Tech News &amp; Insights</p>
              </td>
            </tr>
            <tr>
              <td style="padding: 40px 30px;">
                <h2 style="color: #0f172a; margin: 0 0 20px 0; font-size: 24px; line-height: 1.4;">Thank You for Subscribing!</h2>
                <p style="color: #334155; margin: 0 0 16px 0; font-size: 16px; line-height: 1.6;">
                  We're thrilled to have you join our community of tech enthusiasts! You've successfully subscribed to the {{.SiteName}} Newsletter.
                </p>
                <p style="color: #334155; margin: 0 0 24px 0; font-size: 16px; line-height: 1.6;">
                  From now on, you'll receive a notification whenever we publish fresh content covering technology trends,
                  programming, AI, cybersecurity, and mobile &amp; web technologies.
                </p>
                <a href="{{.BaseURL}}" style="display: inline-block; background-color: #f97316; color: #ffffff; padding: 14px 32px; text-decoration: none; border-radius: 6px; font-weight: 600; font-size: 16px;">
                  Visit {{.SiteName}} Now
                </a>
              </td>
            </tr>
            <tr>
              <td style="background-color: #f8fafc; padding: 30px; text-align: center; border-top: 1px solid #e2e8f0;">
                <p style="color: #64748b; margin: 0 0 12px 0; font-size: 14px;">
                  You're receiving this because you subscribed to {{.SiteName}} Newsletter
                </p>
                <p style="color: #94a3b8; margin: 0; font-size: 12px;">&copy; {{.Year}} {{.SiteName}}. All rights reserved.</p>
                <p style="margin: 12px 0 0 0;">
                  <a href="{{.BaseURL}}/unsubscribe" style="color: #94a3b8; font-size: 12px; text-decoration: underline;">Unsubscribe</a>
                </p>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>
`))

// RenderNewsletter renders the per-article newsletter body. Every recipient
// in a run receives the same document.
func RenderNewsletter(siteName, baseURL string, article *models.Article) (string, error) {
	data := NewsletterData{
		SiteName:   siteName,
		Title:      article.Title,
		Excerpt:    article.Excerpt,
		Author:     article.Author,
		Category:   article.Category,
		ImageURL:   article.ImageURL,
		ReadTime:   article.ReadTime,
		ArticleURL: fmt.Sprintf("%s/news/%s", baseURL, article.ID),
		BaseURL:    baseURL,
		Year:       time.Now().Year(),
	}

	var buf bytes.Buffer
	if err := newsletterTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render newsletter template: %w", err)
	}
	return buf.String(), nil
}

// RenderWelcome renders the welcome body for a new or reactivated subscriber.
func RenderWelcome(siteName, baseURL string) (string, error) {
	data := WelcomeData{
		SiteName: siteName,
		BaseURL:  baseURL,
		Year:     time.Now().Year(),
	}

	var buf bytes.Buffer
	if err := welcomeTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render welcome template: %w", err)
	}
	return buf.String(), nil
}

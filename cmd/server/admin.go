package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/kamikazebr/engage-server/internal/server/services"
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative commands",
	Long:  "Administrative commands for issuing codes and sending notifications without going through HTTP",
}

var issueCodeCmd = &cobra.Command{
	Use:   "issue-code",
	Short: "Issue and email a verification code",
	RunE:  runIssueCodeCommand,
}

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send a push notification to one user",
	RunE:  runNotifyCommand,
}

var listNotificationsCmd = &cobra.Command{
	Use:   "list-notifications",
	Short: "List recent notification records for a user",
	RunE:  runListNotificationsCommand,
}

func init() {
	issueCodeCmd.Flags().String("email", "", "Recipient email (required)")
	issueCodeCmd.MarkFlagRequired("email")

	notifyCmd.Flags().String("user-id", "", "Recipient user ID (required)")
	notifyCmd.Flags().String("title", "", "Notification title (required)")
	notifyCmd.Flags().String("body", "", "Notification body (required)")
	notifyCmd.MarkFlagRequired("user-id")
	notifyCmd.MarkFlagRequired("title")
	notifyCmd.MarkFlagRequired("body")

	listNotificationsCmd.Flags().String("user-id", "", "Recipient user ID (required)")
	listNotificationsCmd.Flags().Int("limit", 20, "Maximum number of records")
	listNotificationsCmd.MarkFlagRequired("user-id")

	adminCmd.AddCommand(issueCodeCmd, notifyCmd, listNotificationsCmd)
}

func runIssueCodeCommand(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	emailService, err := services.NewEmailService(a.cfg)
	if err != nil {
		return err
	}

	if err := services.NewCodeService(a.repos.codes, emailService, nil).RequestCode(ctx, email); err != nil {
		return fmt.Errorf("issue code: %w", err)
	}

	fmt.Printf("✓ Verification code sent to %s\n", email)
	return nil
}

func runNotifyCommand(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetString("user-id")
	title, _ := cmd.Flags().GetString("title")
	body, _ := cmd.Flags().GetString("body")
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := services.NewNotificationService(a.repos.users, a.push).Notify(ctx, userID, title, body); err != nil {
		return fmt.Errorf("notify: %w", err)
	}

	fmt.Printf("✓ Notification sent to %s\n", userID)
	return nil
}

func runListNotificationsCommand(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetString("user-id")
	limit, _ := cmd.Flags().GetInt("limit")
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	records, err := a.repos.notifications.ListForRecipient(ctx, userID, limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Printf("No notifications for %s\n", userID)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tFROM\tREAD\tTIME\tMESSAGE")
	for _, n := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\t%s\n",
			n.ID, n.Type, n.SenderName, n.Read, n.Timestamp.Format(time.RFC3339), n.Message)
	}
	return w.Flush()
}

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <task>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var deleteForce bool // skip the confirmation prompt

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Delete without confirmation")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	st, logger, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	task, err := findTask(st, args[0])
	if err != nil {
		return err
	}

	if !deleteForce {
		fmt.Printf("删除任务 [%s] %s？(y/N) ", shortID(task.ID), task.Title)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(answer)) != "y" {
			fmt.Println("已取消")
			return nil
		}
	}

	if err := st.DeleteTask(task.ID); err != nil {
		return err
	}
	fmt.Printf("已删除任务 [%s] %s\n", shortID(task.ID), task.Title)
	return nil
}

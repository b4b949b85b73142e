package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all data as JSON",
	Long: `Write every stored collection (tasks, settings, statistics,
completion logs) as one JSON blob. Without a file argument the blob
goes to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from an exported JSON blob",
	Long: `Restore collections from an export. The blob may be partial: only
the keys present are overwritten. A malformed key aborts the import;
keys already processed stay imported.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all stored data",
	RunE:  runClear,
}

var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Show storage usage",
	RunE:  runStorage,
}

var clearForce bool // skip the confirmation prompt

func init() {
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "Clear without confirmation")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(storageCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	st, logger, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	export, err := st.ExportData()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(args[0], append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Printf("已导出到 %s\n", args[0])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	st, logger, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	if err := st.ImportData(data); err != nil {
		return err
	}
	fmt.Println("导入完成")
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearForce {
		fmt.Print("清空所有数据？此操作不可恢复 (y/N) ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(answer)) != "y" {
			fmt.Println("已取消")
			return nil
		}
	}

	st, logger, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	if err := st.ClearAllData(); err != nil {
		return err
	}
	fmt.Println("已清空所有数据")
	return nil
}

func runStorage(cmd *cobra.Command, args []string) error {
	st, logger, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	info := st.GetStorageInfo()
	fmt.Printf("已用 %s / %s（%.1f%%）\n",
		formatBytes(info.Used), formatBytes(info.Total), info.Percentage)
	return nil
}

// formatBytes renders a byte count with a binary unit.
func formatBytes(n int64) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

package main

import (
	"bufio"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/config"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/database"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)

	for {
		printMenu()
		fmt.Print("Chọn mục: ")
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)

		switch input {
		case "1":
			createDatabase(cfg)
		case "2":
			migrateSchema(cfg)
		case "3":
			seedData(cfg)
		case "4":
			dropDatabase(cfg)
		case "0":
			fmt.Println("Thoát...")
			os.Exit(0)
		default:
			fmt.Println("Lựa chọn không hợp lệ")
		}

		fmt.Println()
		fmt.Print("Nhấn Enter để tiếp tục...")
		reader.ReadString('\n')
	}
}

func printMenu() {
	fmt.Println()
	fmt.Println("========================================")
	fmt.Println("   TRƯỜNG VIỆT NGỮ - DATABASE CLI")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Println("1. Tạo database (nếu chưa có) + migrate schema")
	fmt.Println("2. Migrate schema")
	fmt.Println("3. Seed dữ liệu mẫu (lớp học, slides)")
	fmt.Println("4. Xoá database")
	fmt.Println("0. Thoát")
	fmt.Println()
	fmt.Println("----------------------------------------")
}

func getPostgresConn(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.SSLMode,
	)
	return sql.Open("postgres", connStr)
}

func databaseExists(cfg *config.Config) (bool, error) {
	db, err := getPostgresConn(cfg)
	if err != nil {
		return false, err
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.Database.Name).Scan(&exists)
	return exists, err
}

func createDatabase(cfg *config.Config) {
	fmt.Println()
	fmt.Println("--- Tạo database + migrate schema ---")

	exists, err := databaseExists(cfg)
	if err != nil {
		fmt.Printf("Lỗi kiểm tra database: %v\n", err)
		return
	}

	if !exists {
		db, err := getPostgresConn(cfg)
		if err != nil {
			fmt.Printf("Lỗi kết nối: %v\n", err)
			return
		}
		defer db.Close()

		if _, err := db.Exec(fmt.Sprintf(`CREATE DATABASE "%s"`, cfg.Database.Name)); err != nil {
			fmt.Printf("Lỗi tạo database: %v\n", err)
			return
		}
		fmt.Printf("Đã tạo database '%s'.\n", cfg.Database.Name)
	} else {
		fmt.Printf("Database '%s' đã có sẵn.\n", cfg.Database.Name)
	}

	migrateSchema(cfg)
}

func migrateSchema(cfg *config.Config) {
	fmt.Println()
	fmt.Println("--- Migrate schema ---")

	db, err := database.Connect(cfg)
	if err != nil {
		fmt.Printf("Lỗi kết nối database: %v\n", err)
		return
	}
	if err := database.Migrate(db); err != nil {
		fmt.Printf("Lỗi migrate: %v\n", err)
		return
	}
	fmt.Println("Migrate schema thành công.")
}

// seedData fills an empty database with one class section per grade for the
// coming school year plus a starter homepage slide. Existing rows are left
// alone.
func seedData(cfg *config.Config) {
	fmt.Println()
	fmt.Println("--- Seed dữ liệu mẫu ---")

	db, err := database.Connect(cfg)
	if err != nil {
		fmt.Printf("Lỗi kết nối database: %v\n", err)
		return
	}

	schoolYear := fmt.Sprintf("%d-%d", time.Now().Year(), time.Now().Year()+1)

	var classCount int64
	db.Model(&domain.Class{}).Count(&classCount)
	if classCount == 0 {
		for _, g := range domain.GradeLevels {
			class := domain.Class{
				Name:       g.LabelVi,
				GradeLevel: string(g.Code),
				SchoolYear: schoolYear,
				Capacity:   20,
				IsActive:   true,
			}
			if err := db.Create(&class).Error; err != nil {
				fmt.Printf("Lỗi seed lớp %s: %v\n", g.Code, err)
				return
			}
		}
		fmt.Printf("Đã tạo %d lớp cho niên khóa %s.\n", len(domain.GradeLevels), schoolYear)
	} else {
		fmt.Println("Đã có lớp học, bỏ qua.")
	}

	var slideCount int64
	db.Model(&domain.SlideshowSlide{}).Count(&slideCount)
	if slideCount == 0 {
		slide := domain.SlideshowSlide{
			ImageURL:  "/images/slides/welcome.jpg",
			CaptionVi: "Chào mừng đến với Trường Việt Ngữ",
			CaptionEn: "Welcome to the Vietnamese Language School",
			Position:  0,
			IsActive:  true,
		}
		if err := db.Create(&slide).Error; err != nil {
			fmt.Printf("Lỗi seed slide: %v\n", err)
			return
		}
		fmt.Println("Đã tạo slide trang chủ.")
	} else {
		fmt.Println("Đã có slides, bỏ qua.")
	}

	fmt.Println("Seed hoàn tất.")
}

func dropDatabase(cfg *config.Config) {
	fmt.Println()
	fmt.Println("--- Xoá database ---")
	fmt.Printf("Xoá toàn bộ database '%s'? Gõ tên database để xác nhận: ", cfg.Database.Name)

	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	if strings.TrimSpace(input) != cfg.Database.Name {
		fmt.Println("Đã huỷ.")
		return
	}

	db, err := getPostgresConn(cfg)
	if err != nil {
		fmt.Printf("Lỗi kết nối: %v\n", err)
		return
	}
	defer db.Close()

	// Kick out remaining sessions so DROP DATABASE does not block.
	_, _ = db.Exec(
		"SELECT pg_terminate_backend(pid) FROM pg_stat_activity WHERE datname = $1 AND pid <> pg_backend_pid()",
		cfg.Database.Name,
	)
	if _, err := db.Exec(fmt.Sprintf(`DROP DATABASE IF EXISTS "%s"`, cfg.Database.Name)); err != nil {
		fmt.Printf("Lỗi xoá database: %v\n", err)
		return
	}
	fmt.Printf("Đã xoá database '%s'.\n", cfg.Database.Name)
}

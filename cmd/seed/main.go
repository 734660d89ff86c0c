package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/config"
	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/repository"
	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/seed"
	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入基础数据, 2: 插入随机员工, 3: 插入演示排班)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		seed.SeedBaseData(repo)
	case 2:
		if n <= 0 {
			slog.Error("请输入合法的员工数量")
			return
		}

		// 随机员工的技能从现有技能中抽取
		skills, err := repo.GetAllSkills()
		if err != nil {
			slog.Error("无法获取技能列表", slog.String("error", err.Error()))
			return
		}
		skillIDs := make([]int64, 0, len(skills))
		for _, skill := range skills {
			skillIDs = append(skillIDs, skill.ID)
		}

		cnt := n
		for i := 0; i < n; i++ {
			employee, err := utils.GenerateRandomEmployee(cfg.Seed.Employee.Password, cfg.Email.UserDomain, skillIDs)
			if err != nil {
				slog.Error("无法生成随机员工", slog.String("error", err.Error()))
				continue
			}

			if err := repo.CreateEmployee(employee); err != nil {
				slog.Error("无法插入员工", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("插入员工成功", slog.Int("count", n-cnt))
	case 3:
		seed.SeedDemoWeeklySchedule(repo)
	default:
		slog.Error("指定的操作非法")
	}
}

package db

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
)

// GetMysqlConnection opens the inventory database. MYSQL_DSN wins when set;
// otherwise the connection is built from the container defaults.
func GetMysqlConnection() (*sql.DB, error) {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dbPass := os.Getenv("MYSQL_PASSWORD")
		dsn = fmt.Sprintf("%s:%s@unix(%s)/%s", "inventory", dbPass, "/app/run/mysqld.sock", "inventory")
	}
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	return conn, nil
}

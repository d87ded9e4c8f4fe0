package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL 错误码
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// 迁移中声明的约束名，用于区分唯一冲突的字段
const (
	ConstraintUsersEmail       = "uq_users_email"
	ConstraintUsersDisplayName = "uq_users_display_name"
)

// UniqueViolation 判断是否为唯一约束冲突，返回冲突的约束名
func UniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// IsForeignKeyViolation 判断是否为外键约束冲突（引用的行不存在或已被删除）
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// NewUniqueViolation 构造唯一约束冲突错误
func NewUniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraint}
}

// NewForeignKeyViolation 构造外键约束冲突错误
func NewForeignKeyViolation(constraint string) error {
	return &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: constraint}
}

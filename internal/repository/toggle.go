package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// toggleTable 描述一张"行存在即为激活"的关系表
type toggleTable struct {
	name       string
	subjectCol string
	objectCol  string
}

// query 生成单语句翻转 SQL：
// 有行则删除；没有被删除的行时插入，唯一约束兜底并发插入。
// 返回的 active 为"本语句没有删除任何行"，并发场景下同样成立。
func (t toggleTable) query() string {
	return fmt.Sprintf(`WITH removed AS (
	DELETE FROM %[1]s WHERE %[2]s = @subject AND %[3]s = @object RETURNING 1
), added AS (
	INSERT INTO %[1]s (%[2]s, %[3]s)
	SELECT CAST(@subject AS uuid), CAST(@object AS uuid) WHERE NOT EXISTS (SELECT 1 FROM removed)
	ON CONFLICT (%[2]s, %[3]s) DO NOTHING
	RETURNING 1
)
SELECT NOT EXISTS (SELECT 1 FROM removed) AS active`, t.name, t.subjectCol, t.objectCol)
}

// toggle 原子翻转 (subject, object) 关系，返回翻转后的状态
func toggle(ctx context.Context, db *gorm.DB, table toggleTable, subject, object uuid.UUID) (bool, error) {
	var active bool
	row := db.WithContext(ctx).Raw(table.query(), map[string]interface{}{
		"subject": subject,
		"object":  object,
	}).Row()
	if err := row.Scan(&active); err != nil {
		return false, fmt.Errorf("toggle %s: %w", table.name, err)
	}
	return active, nil
}

package store

import (
	"context"
	"fmt"
	"strings"
)

func (r *eventRepo) AppendPlanEvent(ctx context.Context, data PlanEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO plan_events
		(sequence, teacher_id, session_id, grade, subject, topic,
		 duration_minutes, review_status, review_score, success, elapsed_ms, plan_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, data.TeacherID, data.SessionID, data.Grade, data.Subject,
		data.Topic, data.DurationMinutes, data.ReviewStatus, data.ReviewScore,
		boolToInt(data.Success), data.ElapsedMs, data.PlanJSON)
	if err != nil {
		return fmt.Errorf("save plan event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryPlanEvents(ctx context.Context, opts QueryOpts) ([]PlanEventRecord, error) {
	q := `SELECT id, sequence, timestamp, teacher_id, session_id, grade,
		subject, topic, duration_minutes, review_status, review_score,
		success, elapsed_ms, plan_json
		FROM plan_events`
	where, args := buildWhere(opts)
	if opts.Teacher != "" {
		where = append(where, "teacher_id = ?")
		args = append(args, opts.Teacher)
	}
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY sequence DESC"
	if opts.Limit > 0 {
		q += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query plan events: %w", err)
	}
	defer rows.Close()

	var out []PlanEventRecord
	for rows.Next() {
		var rec PlanEventRecord
		var success int
		if err := rows.Scan(&rec.ID, &rec.Sequence, &rec.Timestamp,
			&rec.TeacherID, &rec.SessionID, &rec.Grade, &rec.Subject,
			&rec.Topic, &rec.DurationMinutes, &rec.ReviewStatus,
			&rec.ReviewScore, &success, &rec.ElapsedMs, &rec.PlanJSON); err != nil {
			return nil, fmt.Errorf("scan plan event: %w", err)
		}
		rec.Success = success != 0
		out = append(out, rec)
	}
	return out, rows.Err()
}

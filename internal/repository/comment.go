package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/model"
)

// selectComments reads a comment with its post and author. The joins are
// LEFT so a comment whose post or profile row is gone still comes back,
// with the joined columns NULL.
const selectComments = `
	SELECT
		c.id,
		c.subject,
		c.content,
		c.create_date_time,
		c.post_id,
		c.user_profile_id,
		p.id                AS post_row_id,
		p.title             AS post_title,
		p.content           AS post_content,
		p.image_location    AS post_image_location,
		p.create_date_time  AS post_create_date_time,
		p.publish_date_time AS post_publish_date_time,
		p.is_approved       AS post_is_approved,
		p.category_id       AS post_category_id,
		p.user_profile_id   AS post_user_profile_id,
		u.id                AS profile_row_id,
		u.display_name      AS profile_display_name,
		u.first_name        AS profile_first_name,
		u.last_name         AS profile_last_name,
		u.email             AS profile_email,
		u.create_date_time  AS profile_create_date_time,
		u.image_location    AS profile_image_location,
		u.user_type_id      AS profile_user_type_id
	FROM
		comment c
		LEFT JOIN post p ON c.post_id = p.id
		LEFT JOIN user_profile u ON c.user_profile_id = u.id`

// commentRow is the column-to-field table for selectComments. Columns are
// bound by name, so the order in the query doesn't matter. Everything that
// comes from a joined table is a pointer because the join may miss.
type commentRow struct {
	ID             int       `db:"id"`
	Subject        string    `db:"subject"`
	Content        string    `db:"content"`
	CreateDateTime time.Time `db:"create_date_time"`
	PostID         int       `db:"post_id"`
	UserProfileID  int       `db:"user_profile_id"`

	PostRowID           *int       `db:"post_row_id"`
	PostTitle           *string    `db:"post_title"`
	PostContent         *string    `db:"post_content"`
	PostImageLocation   *string    `db:"post_image_location"`
	PostCreateDateTime  *time.Time `db:"post_create_date_time"`
	PostPublishDateTime *time.Time `db:"post_publish_date_time"`
	PostIsApproved      *bool      `db:"post_is_approved"`
	PostCategoryID      *int       `db:"post_category_id"`
	PostUserProfileID   *int       `db:"post_user_profile_id"`

	ProfileRowID          *int       `db:"profile_row_id"`
	ProfileDisplayName    *string    `db:"profile_display_name"`
	ProfileFirstName      *string    `db:"profile_first_name"`
	ProfileLastName       *string    `db:"profile_last_name"`
	ProfileEmail          *string    `db:"profile_email"`
	ProfileCreateDateTime *time.Time `db:"profile_create_date_time"`
	ProfileImageLocation  *string    `db:"profile_image_location"`
	ProfileUserTypeID     *int       `db:"profile_user_type_id"`
}

// toComment folds the flat row into a Comment with nested Post and
// UserProfile. A NULL row id means the join found nothing and the nested
// object stays nil.
func (r commentRow) toComment() model.Comment {
	comment := model.Comment{
		ID:             r.ID,
		Subject:        r.Subject,
		Content:        r.Content,
		CreateDateTime: r.CreateDateTime,
		PostID:         r.PostID,
		UserProfileID:  r.UserProfileID,
	}

	if r.PostRowID != nil {
		comment.Post = &model.Post{
			ID:              *r.PostRowID,
			Title:           valueOf(r.PostTitle),
			Content:         valueOf(r.PostContent),
			ImageLocation:   r.PostImageLocation,
			CreateDateTime:  valueOf(r.PostCreateDateTime),
			PublishDateTime: r.PostPublishDateTime,
			IsApproved:      valueOf(r.PostIsApproved),
			CategoryID:      valueOf(r.PostCategoryID),
			UserProfileID:   valueOf(r.PostUserProfileID),
		}
	}

	if r.ProfileRowID != nil {
		comment.UserProfile = &model.UserProfile{
			ID:             *r.ProfileRowID,
			DisplayName:    valueOf(r.ProfileDisplayName),
			FirstName:      valueOf(r.ProfileFirstName),
			LastName:       valueOf(r.ProfileLastName),
			Email:          valueOf(r.ProfileEmail),
			CreateDateTime: valueOf(r.ProfileCreateDateTime),
			ImageLocation:  r.ProfileImageLocation,
			UserTypeID:     valueOf(r.ProfileUserTypeID),
		}
	}

	return comment
}

// CommentRepository reads and writes comments.
type CommentRepository struct {
	db ConnProvider
}

func NewCommentRepository(db ConnProvider) *CommentRepository {
	return &CommentRepository{db: db}
}

// GetCommentsByPost returns the post's comments, newest first. A post with
// no comments, or no post at all, yields an empty slice.
func (r *CommentRepository) GetCommentsByPost(ctx context.Context, postID int) ([]model.Comment, error) {
	var comments []model.Comment

	err := withConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, selectComments+`
	WHERE
		c.post_id = @post_id
	ORDER BY
		c.create_date_time DESC`,
			pgx.NamedArgs{"post_id": postID})
		if err != nil {
			return err
		}

		commentRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[commentRow])
		if err != nil {
			return err
		}

		comments = make([]model.Comment, 0, len(commentRows))
		for _, row := range commentRows {
			comments = append(comments, row.toComment())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get comments for post %d: %w", postID, err)
	}

	return comments, nil
}

// AddComment inserts c and writes the store-assigned id back into c.ID.
// c.ID is left alone when the insert fails.
func (r *CommentRepository) AddComment(ctx context.Context, c *model.Comment) error {
	err := withConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		var id int
		err := conn.QueryRow(ctx, `
			INSERT INTO comment
				(post_id, user_profile_id, subject, content, create_date_time)
			VALUES
				(@post_id, @user_profile_id, @subject, @content, @create_date_time)
			RETURNING id`,
			pgx.NamedArgs{
				"post_id":          c.PostID,
				"user_profile_id":  c.UserProfileID,
				"subject":          c.Subject,
				"content":          c.Content,
				"create_date_time": c.CreateDateTime,
			}).Scan(&id)
		if err != nil {
			return err
		}

		c.ID = id
		return nil
	})
	if err != nil {
		return fmt.Errorf("add comment: %w", err)
	}

	return nil
}

// GetCommentByID returns the comment with its post and author, or nil if
// no comment has that id.
func (r *CommentRepository) GetCommentByID(ctx context.Context, id int) (*model.Comment, error) {
	var comment *model.Comment

	err := withConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, selectComments+`
	WHERE
		c.id = @id`,
			pgx.NamedArgs{"id": id})
		if err != nil {
			return err
		}

		row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[commentRow])
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		c := row.toComment()
		comment = &c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get comment %d: %w", id, err)
	}

	return comment, nil
}

// DeleteComment removes the comment. Deleting a missing id is not an error.
func (r *CommentRepository) DeleteComment(ctx context.Context, id int) error {
	err := withConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		_, err := conn.Exec(ctx, `
			DELETE FROM comment
			WHERE id = @id`,
			pgx.NamedArgs{"id": id})
		return err
	})
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}

	return nil
}

// UpdateComment overwrites post, author, subject, content and creation time
// of the comment with c.ID. Updating a missing id is not an error.
func (r *CommentRepository) UpdateComment(ctx context.Context, c model.Comment) error {
	err := withConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		_, err := conn.Exec(ctx, `
			UPDATE comment
			SET
				post_id = @post_id,
				user_profile_id = @user_profile_id,
				subject = @subject,
				content = @content,
				create_date_time = @create_date_time
			WHERE
				id = @id`,
			pgx.NamedArgs{
				"id":               c.ID,
				"post_id":          c.PostID,
				"user_profile_id":  c.UserProfileID,
				"subject":          c.Subject,
				"content":          c.Content,
				"create_date_time": c.CreateDateTime,
			})
		return err
	})
	if err != nil {
		return fmt.Errorf("update comment %d: %w", c.ID, err)
	}

	return nil
}

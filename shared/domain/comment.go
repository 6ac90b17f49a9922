package domain

// DeletedCommentContent replaces the content of a soft-deleted comment when rendered.
const DeletedCommentContent = "**komentar telah dihapus**"

var (
	newCommentSchema    = newSchema("NEW_COMMENT", required("content"), required("owner"), required("threadId"))
	addedCommentSchema  = newSchema("ADDED_COMMENT", required("id"), required("content"), required("owner"))
	deleteCommentSchema = newSchema("DELETE_COMMENT", required("threadId"), required("commentId"), required("owner"))
	commentSchema       = newSchema("COMMENT", required("id"), required("content"), required("username"), required("created_at"), nullable("deleted_at"))
)

type NewComment struct {
	Content  string
	Owner    UserId
	ThreadId ThreadId
}

func ParseNewComment(p Payload) (NewComment, error) {
	if err := newCommentSchema.validate(p); err != nil {
		return NewComment{}, err
	}
	return NewComment{Content: p.str("content"), Owner: p.str("owner"), ThreadId: p.str("threadId")}, nil
}

type AddedComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

func ParseAddedComment(p Payload) (AddedComment, error) {
	if err := addedCommentSchema.validate(p); err != nil {
		return AddedComment{}, err
	}
	return AddedComment{Id: p.str("id"), Content: p.str("content"), Owner: p.str("owner")}, nil
}

type DeleteComment struct {
	ThreadId  ThreadId
	CommentId CommentId
	Owner     UserId
}

func ParseDeleteComment(p Payload) (DeleteComment, error) {
	if err := deleteCommentSchema.validate(p); err != nil {
		return DeleteComment{}, err
	}
	return DeleteComment{ThreadId: p.str("threadId"), CommentId: p.str("commentId"), Owner: p.str("owner")}, nil
}

// CommentRow is a comments table row as stored. Content is never redacted here.
type CommentRow struct {
	Id        CommentId `json:"id"`
	Content   string    `json:"content"`
	Owner     UserId    `json:"owner"`
	ThreadId  ThreadId  `json:"thread_id"`
	CreatedAt string    `json:"created_at"`
	DeletedAt *string   `json:"deleted_at"`
}

// Payload shapes the row for the Comment view entity.
func (r CommentRow) Payload(username string) Payload {
	p := Payload{
		"id":         r.Id,
		"content":    r.Content,
		"username":   username,
		"created_at": r.CreatedAt,
		"deleted_at": nil,
	}
	if r.DeletedAt != nil {
		p["deleted_at"] = *r.DeletedAt
	}
	return p
}

// Comment is the public view of a comment inside a thread detail.
type Comment struct {
	Id       CommentId `json:"id"`
	Username string    `json:"username"`
	Date     string    `json:"date"`
	Content  string    `json:"content"`
	Replies  []Reply   `json:"replies"`
}

func ParseComment(p Payload) (Comment, error) {
	if err := commentSchema.validate(p); err != nil {
		return Comment{}, err
	}
	content := p.str("content")
	if p.isDeleted() {
		content = DeletedCommentContent
	}
	return Comment{
		Id:       p.str("id"),
		Username: p.str("username"),
		Date:     p.str("created_at"),
		Content:  content,
		Replies:  []Reply{},
	}, nil
}

package domain

// DeletedReplyContent replaces the content of a soft-deleted reply when rendered.
const DeletedReplyContent = "**balasan telah dihapus**"

var (
	newReplySchema    = newSchema("NEW_REPLY", required("content"), required("owner"), required("commentId"), required("threadId"))
	addedReplySchema  = newSchema("ADDED_REPLY", required("id"), required("content"), required("owner"))
	deleteReplySchema = newSchema("DELETE_REPLY", required("threadId"), required("commentId"), required("replyId"), required("owner"))
	replySchema       = newSchema("REPLY", required("id"), required("content"), required("username"), required("created_at"), nullable("deleted_at"))
)

type NewReply struct {
	Content   string
	Owner     UserId
	CommentId CommentId
	ThreadId  ThreadId
}

func ParseNewReply(p Payload) (NewReply, error) {
	if err := newReplySchema.validate(p); err != nil {
		return NewReply{}, err
	}
	return NewReply{
		Content:   p.str("content"),
		Owner:     p.str("owner"),
		CommentId: p.str("commentId"),
		ThreadId:  p.str("threadId"),
	}, nil
}

type AddedReply struct {
	Id      ReplyId `json:"id"`
	Content string  `json:"content"`
	Owner   UserId  `json:"owner"`
}

func ParseAddedReply(p Payload) (AddedReply, error) {
	if err := addedReplySchema.validate(p); err != nil {
		return AddedReply{}, err
	}
	return AddedReply{Id: p.str("id"), Content: p.str("content"), Owner: p.str("owner")}, nil
}

type DeleteReply struct {
	ThreadId  ThreadId
	CommentId CommentId
	ReplyId   ReplyId
	Owner     UserId
}

func ParseDeleteReply(p Payload) (DeleteReply, error) {
	if err := deleteReplySchema.validate(p); err != nil {
		return DeleteReply{}, err
	}
	return DeleteReply{
		ThreadId:  p.str("threadId"),
		CommentId: p.str("commentId"),
		ReplyId:   p.str("replyId"),
		Owner:     p.str("owner"),
	}, nil
}

// ReplyRow is a replies table row as stored. Content is never redacted here.
type ReplyRow struct {
	Id        ReplyId   `json:"id"`
	Content   string    `json:"content"`
	Owner     UserId    `json:"owner"`
	CommentId CommentId `json:"comment_id"`
	CreatedAt string    `json:"created_at"`
	DeletedAt *string   `json:"deleted_at"`
}

func (r ReplyRow) Payload(username string) Payload {
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

// Reply is the public view of a reply inside a comment.
type Reply struct {
	Id       ReplyId `json:"id"`
	Content  string  `json:"content"`
	Date     string  `json:"date"`
	Username string  `json:"username"`
}

func ParseReply(p Payload) (Reply, error) {
	if err := replySchema.validate(p); err != nil {
		return Reply{}, err
	}
	content := p.str("content")
	if p.isDeleted() {
		content = DeletedReplyContent
	}
	return Reply{
		Id:       p.str("id"),
		Content:  content,
		Date:     p.str("created_at"),
		Username: p.str("username"),
	}, nil
}

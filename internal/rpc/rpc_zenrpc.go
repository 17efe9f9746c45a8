// Code generated by zenrpc v2.3.1; DO NOT EDIT.

package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	CategoryService struct{ List, ByID, Add, Update, Delete string }
	IconService     struct{ List, ByID, Add, Update, Delete string }
	PostService     struct{ List, ByID, Add, Update, Delete, TagPost, UntagPost string }
	TagService      struct{ List, ByID, Add, Update, Delete string }
	UserService     struct{ List, ByID, Add, Update, Delete string }
}{
	CategoryService: struct{ List, ByID, Add, Update, Delete string }{
		List:   "list",
		ByID:   "byid",
		Add:    "add",
		Update: "update",
		Delete: "delete",
	},
	IconService: struct{ List, ByID, Add, Update, Delete string }{
		List:   "list",
		ByID:   "byid",
		Add:    "add",
		Update: "update",
		Delete: "delete",
	},
	PostService: struct{ List, ByID, Add, Update, Delete, TagPost, UntagPost string }{
		List:      "list",
		ByID:      "byid",
		Add:       "add",
		Update:    "update",
		Delete:    "delete",
		TagPost:   "tagpost",
		UntagPost: "untagpost",
	},
	TagService: struct{ List, ByID, Add, Update, Delete string }{
		List:   "list",
		ByID:   "byid",
		Add:    "add",
		Update: "update",
		Delete: "delete",
	},
	UserService: struct{ List, ByID, Add, Update, Delete string }{
		List:   "list",
		ByID:   "byid",
		Add:    "add",
		Update: "update",
		Delete: "delete",
	},
}

func (CategoryService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List retrieves all categories sorted by ID.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of categories`,
					Type:        smd.Array,
					TypeName:    "[]Category",
					Items: map[string]string{
						"$ref": "#/definitions/Category",
					},
					Definitions: map[string]smd.Definition{
						"Category": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "categoryId",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "alias",
									Type: smd.String,
								},
								{
									Name:     "template",
									Optional: true,
									Type:     smd.String,
								},
								{
									Name: "isPage",
									Type: smd.Boolean,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"ByID": {
				Description: `ByID retrieves a single category by ID.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "IDRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id numeric ID`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `category`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Category",
					Properties: smd.PropertyList{
						{
							Name: "categoryId",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "alias",
							Type: smd.String,
						},
						{
							Name:     "template",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "isPage",
							Type: smd.Boolean,
						},
					},
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "category not found",
					500: "internal server error",
				},
			},
			"Add": {
				Description: `Add creates a category and returns it with the assigned ID.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "CategoryAddRequest",
						Properties: smd.PropertyList{
							{
								Name:        "title",
								Description: `title category title`,
								Type:        smd.String,
							},
							{
								Name:        "alias",
								Description: `alias unique URL slug`,
								Type:        smd.String,
							},
							{
								Name:        "template",
								Optional:    true,
								Description: `template optional render template name`,
								Type:        smd.String,
							},
							{
								Name:        "isPage",
								Description: `isPage marks the category posts as standalone pages`,
								Type:        smd.Boolean,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `created category`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Category",
					Properties: smd.PropertyList{
						{
							Name: "categoryId",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "alias",
							Type: smd.String,
						},
						{
							Name:     "template",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "isPage",
							Type: smd.Boolean,
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Update": {
				Description: `Update replaces a category by ID. An empty template clears the stored value.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "CategoryUpdateRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id category numeric ID`,
								Type:        smd.Integer,
							},
							{
								Name:        "title",
								Description: `title category title`,
								Type:        smd.String,
							},
							{
								Name:        "alias",
								Description: `alias unique URL slug`,
								Type:        smd.String,
							},
							{
								Name:        "template",
								Optional:    true,
								Description: `template optional render template name, empty clears it`,
								Type:        smd.String,
							},
							{
								Name:        "isPage",
								Description: `isPage marks the category posts as standalone pages`,
								Type:        smd.Boolean,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `updated category`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Category",
					Properties: smd.PropertyList{
						{
							Name: "categoryId",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "alias",
							Type: smd.String,
						},
						{
							Name:     "template",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "isPage",
							Type: smd.Boolean,
						},
					},
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "category not found",
					500: "internal server error",
				},
			},
			"Delete": {
				Description: `Delete removes a category by ID.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "IDRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id numeric ID`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `true when the category existed`,
					Type:        smd.Boolean,
				},
				Errors: map[int]string{
					400: "id must be positive",
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s CategoryService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.CategoryService.List:
		resp.Set(s.List(ctx))

	case RPC.CategoryService.ByID:
		var args = struct {
			Req IDRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.ByID(ctx, args.Req))

	case RPC.CategoryService.Add:
		var args = struct {
			Req CategoryAddRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Add(ctx, args.Req))

	case RPC.CategoryService.Update:
		var args = struct {
			Req CategoryUpdateRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Update(ctx, args.Req))

	case RPC.CategoryService.Delete:
		var args = struct {
			Req IDRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Delete(ctx, args.Req))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}

func (IconService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List retrieves all icons sorted by title.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of icons`,
					Type:        smd.Array,
					TypeName:    "[]Icon",
					Items: map[string]string{
						"$ref": "#/definitions/Icon",
					},
					Definitions: map[string]smd.Definition{
						"Icon": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "iconId",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "url",
									Type: smd.String,
								},
								{
									Name: "content",
									Type: smd.String,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"ByID": {
				Description: `ByID retrieves a single icon by ID.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "IDRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id numeric ID`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `icon`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Icon",
					Properties: smd.PropertyList{
						{
							Name: "iconId",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "url",
							Type: smd.String,
						},
						{
							Name: "content",
							Type: smd.String,
						},
					},
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "icon not found",
					500: "internal server error",
				},
			},
			"Add": {
				Description: `Add creates an icon and returns it with the assigned ID.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "IconAddRequest",
						Properties: smd.PropertyList{
							{
								Name:        "title",
								Description: `title unique icon title`,
								Type:        smd.String,
							},
							{
								Name:        "url",
								Description: `url unique link target`,
								Type:        smd.String,
							},
							{
								Name:        "content",
								Description: `content inline SVG or markup`,
								Type:        smd.String,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `created icon`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Icon",
					Properties: smd.PropertyList{
						{
							Name: "iconId",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "url",
							Type: smd.String,
						},
						{
							Name: "content",
							Type: smd.String,
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Update": {
				Description: `Update replaces an icon by ID.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "IconUpdateRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id icon numeric ID`,
								Type:        smd.Integer,
							},
							{
								Name:        "title",
								Description: `title unique icon title`,
								Type:        smd.String,
							},
							{
								Name:        "url",
								Description: `url unique link target`,
								Type:        smd.String,
							},
							{
								Name:        "content",
								Description: `content inline SVG or markup`,
								Type:        smd.String,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `updated icon`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Icon",
					Properties: smd.PropertyList{
						{
							Name: "iconId",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "url",
							Type: smd.String,
						},
						{
							Name: "content",
							Type: smd.String,
						},
					},
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "icon not found",
					500: "internal server error",
				},
			},
			"Delete": {
				Description: `Delete removes an icon by ID.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "IDRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id numeric ID`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `true when the icon existed`,
					Type:        smd.Boolean,
				},
				Errors: map[int]string{
					400: "id must be positive",
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s IconService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.IconService.List:
		resp.Set(s.List(ctx))

	case RPC.IconService.ByID:
		var args = struct {
			Req IDRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.ByID(ctx, args.Req))

	case RPC.IconService.Add:
		var args = struct {
			Req IconAddRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Add(ctx, args.Req))

	case RPC.IconService.Update:
		var args = struct {
			Req IconUpdateRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Update(ctx, args.Req))

	case RPC.IconService.Delete:
		var args = struct {
			Req IDRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Delete(ctx, args.Req))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}

func (PostService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List retrieves all posts, drafts included, sorted by ID.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of post summaries`,
					Type:        smd.Array,
					TypeName:    "[]PostSummary",
					Items: map[string]string{
						"$ref": "#/definitions/PostSummary",
					},
					Definitions: map[string]smd.Definition{
						"PostSummary": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "postId",
									Type: smd.Integer,
								},
								{
									Name: "pageTitle",
									Type: smd.String,
								},
								{
									Name: "alias",
									Type: smd.String,
								},
								{
									Name: "createdOn",
									Type: smd.String,
								},
								{
									Name:     "publishedOn",
									Optional: true,
									Type:     smd.String,
								},
								{
									Name:     "categoryId",
									Optional: true,
									Type:     smd.Integer,
								},
								{
									Name:     "userId",
									Optional: true,
									Type:     smd.Integer,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"ByID": {
				Description: `ByID retrieves a single post by ID with full content, category and tags.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "IDRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id numeric ID`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `post with full content`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Post",
					Properties: smd.PropertyList{
						{
							Name: "postId",
							Type: smd.Integer,
						},
						{
							Name: "pageTitle",
							Type: smd.String,
						},
						{
							Name: "alias",
							Type: smd.String,
						},
						{
							Name: "content",
							Type: smd.String,
						},
						{
							Name: "createdOn",
							Type: smd.String,
						},
						{
							Name:     "publishedOn",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name:     "categoryId",
							Optional: true,
							Type:     smd.Integer,
						},
						{
							Name:     "userId",
							Optional: true,
							Type:     smd.Integer,
						},
						{
							Name:     "category",
							Optional: true,
							Ref:      "#/definitions/Category",
							Type:     smd.Object,
						},
						{
							Name: "tags",
							Type: smd.Array,
							Items: map[string]string{
								"$ref": "#/definitions/Tag",
							},
						},
					},
					Definitions: map[string]smd.Definition{
						"Category": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "categoryId",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "alias",
									Type: smd.String,
								},
								{
									Name:     "template",
									Optional: true,
									Type:     smd.String,
								},
								{
									Name: "isPage",
									Type: smd.Boolean,
								},
							},
						},
						"Tag": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "tagId",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "alias",
									Type: smd.String,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "post not found",
					500: "internal server error",
				},
			},
			"Add": {
				Description: `Add creates a post and returns it with the assigned ID.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "PostAddRequest",
						Properties: smd.PropertyList{
							{
								Name:        "pageTitle",
								Description: `pageTitle post title`,
								Type:        smd.String,
							},
							{
								Name:        "alias",
								Description: `alias unique URL slug`,
								Type:        smd.String,
							},
							{
								Name:        "content",
								Description: `content markdown body`,
								Type:        smd.String,
							},
							{
								Name:        "publishedOn",
								Optional:    true,
								Description: `publishedOn publication time, empty means draft`,
								Type:        smd.String,
							},
							{
								Name:        "categoryId",
								Optional:    true,
								Description: `categoryId optional category`,
								Type:        smd.Integer,
							},
							{
								Name:        "userId",
								Optional:    true,
								Description: `userId optional author`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `created post`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Post",
					Properties: smd.PropertyList{
						{
							Name: "postId",
							Type: smd.Integer,
						},
						{
							Name: "pageTitle",
							Type: smd.String,
						},
						{
							Name: "alias",
							Type: smd.String,
						},
						{
							Name: "content",
							Type: smd.String,
						},
						{
							Name: "createdOn",
							Type: smd.String,
						},
						{
							Name:     "publishedOn",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name:     "categoryId",
							Optional: true,
							Type:     smd.Integer,
						},
						{
							Name:     "userId",
							Optional: true,
							Type:     smd.Integer,
						},
						{
							Name:     "category",
							Optional: true,
							Ref:      "#/definitions/Category",
							Type:     smd.Object,
						},
						{
							Name: "tags",
							Type: smd.Array,
							Items: map[string]string{
								"$ref": "#/definitions/Tag",
							},
						},
					},
					Definitions: map[string]smd.Definition{
						"Category": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "categoryId",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "alias",
									Type: smd.String,
								},
								{
									Name:     "template",
									Optional: true,
									Type:     smd.String,
								},
								{
									Name: "isPage",
									Type: smd.Boolean,
								},
							},
						},
						"Tag": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "tagId",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "alias",
									Type: smd.String,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Update": {
				Description: `Update replaces a post by ID. Empty optional fields clear the stored
values; the creation timestamp is carried over from the stored post.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "PostUpdateRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id post numeric ID`,
								Type:        smd.Integer,
							},
							{
								Name:        "pageTitle",
								Description: `pageTitle post title`,
								Type:        smd.String,
							},
							{
								Name:        "alias",
								Description: `alias unique URL slug`,
								Type:        smd.String,
							},
							{
								Name:        "content",
								Description: `content markdown body`,
								Type:        smd.String,
							},
							{
								Name:        "publishedOn",
								Optional:    true,
								Description: `publishedOn publication time, empty clears it back to draft`,
								Type:        smd.String,
							},
							{
								Name:        "categoryId",
								Optional:    true,
								Description: `categoryId optional category, empty clears it`,
								Type:        smd.Integer,
							},
							{
								Name:        "userId",
								Optional:    true,
								Description: `userId optional author, empty clears it`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `updated post`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Post",
					Properties: smd.PropertyList{
						{
							Name: "postId",
							Type: smd.Integer,
						},
						{
							Name: "pageTitle",
							Type: smd.String,
						},
						{
							Name: "alias",
							Type: smd.String,
						},
						{
							Name: "content",
							Type: smd.String,
						},
						{
							Name: "createdOn",
							Type: smd.String,
						},
						{
							Name:     "publishedOn",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name:     "categoryId",
							Optional: true,
							Type:     smd.Integer,
						},
						{
							Name:     "userId",
							Optional: true,
							Type:     smd.Integer,
						},
						{
							Name:     "category",
							Optional: true,
							Ref:      "#/definitions/Category",
							Type:     smd.Object,
						},
						{
							Name: "tags",
							Type: smd.Array,
							Items: map[string]string{
								"$ref": "#/definitions/Tag",
							},
						},
					},
					Definitions: map[string]smd.Definition{
						"Category": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "categoryId",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "alias",
									Type: smd.String,
								},
								{
									Name:     "template",
									Optional: true,
									Type:     smd.String,
								},
								{
									Name: "isPage",
									Type: smd.Boolean,
								},
							},
						},
						"Tag": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "tagId",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "alias",
									Type: smd.String,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "post not found",
					500: "internal server error",
				},
			},
			"Delete": {
				Description: `Delete removes a post by ID.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "IDRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id numeric ID`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `true when the post existed`,
					Type:        smd.Boolean,
				},
				Errors: map[int]string{
					400: "id must be positive",
					500: "internal server error",
				},
			},
			"TagPost": {
				Description: `TagPost attaches a tag to a post. Attaching an already attached tag is a no-op.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "PostTagRequest",
						Properties: smd.PropertyList{
							{
								Name:        "postId",
								Description: `postId post numeric ID`,
								Type:        smd.Integer,
							},
							{
								Name:        "tagId",
								Description: `tagId tag numeric ID`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"UntagPost": {
				Description: `UntagPost detaches a tag from a post.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "PostTagRequest",
						Properties: smd.PropertyList{
							{
								Name:        "postId",
								Description: `postId post numeric ID`,
								Type:        smd.Integer,
							},
							{
								Name:        "tagId",
								Description: `tagId tag numeric ID`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `true when the association existed`,
					Type:        smd.Boolean,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s PostService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.PostService.List:
		resp.Set(s.List(ctx))

	case RPC.PostService.ByID:
		var args = struct {
			Req IDRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.ByID(ctx, args.Req))

	case RPC.PostService.Add:
		var args = struct {
			Req PostAddRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Add(ctx, args.Req))

	case RPC.PostService.Update:
		var args = struct {
			Req PostUpdateRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Update(ctx, args.Req))

	case RPC.PostService.Delete:
		var args = struct {
			Req IDRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Delete(ctx, args.Req))

	case RPC.PostService.TagPost:
		var args = struct {
			Req PostTagRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.TagPost(ctx, args.Req))

	case RPC.PostService.UntagPost:
		var args = struct {
			Req PostTagRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.UntagPost(ctx, args.Req))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}

func (TagService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List retrieves all tags sorted by title.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of tags`,
					Type:        smd.Array,
					TypeName:    "[]Tag",
					Items: map[string]string{
						"$ref": "#/definitions/Tag",
					},
					Definitions: map[string]smd.Definition{
						"Tag": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "tagId",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "alias",
									Type: smd.String,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"ByID": {
				Description: `ByID retrieves a single tag by ID.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "IDRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id numeric ID`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `tag`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Tag",
					Properties: smd.PropertyList{
						{
							Name: "tagId",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "alias",
							Type: smd.String,
						},
					},
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "tag not found",
					500: "internal server error",
				},
			},
			"Add": {
				Description: `Add creates a tag and returns it with the assigned ID.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "TagAddRequest",
						Properties: smd.PropertyList{
							{
								Name:        "title",
								Description: `title tag title`,
								Type:        smd.String,
							},
							{
								Name:        "alias",
								Description: `alias unique URL slug`,
								Type:        smd.String,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `created tag`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Tag",
					Properties: smd.PropertyList{
						{
							Name: "tagId",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "alias",
							Type: smd.String,
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Update": {
				Description: `Update replaces a tag by ID.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "TagUpdateRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id tag numeric ID`,
								Type:        smd.Integer,
							},
							{
								Name:        "title",
								Description: `title tag title`,
								Type:        smd.String,
							},
							{
								Name:        "alias",
								Description: `alias unique URL slug`,
								Type:        smd.String,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `updated tag`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Tag",
					Properties: smd.PropertyList{
						{
							Name: "tagId",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "alias",
							Type: smd.String,
						},
					},
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "tag not found",
					500: "internal server error",
				},
			},
			"Delete": {
				Description: `Delete removes a tag by ID, detaching it from all posts.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "IDRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id numeric ID`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `true when the tag existed`,
					Type:        smd.Boolean,
				},
				Errors: map[int]string{
					400: "id must be positive",
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s TagService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.TagService.List:
		resp.Set(s.List(ctx))

	case RPC.TagService.ByID:
		var args = struct {
			Req IDRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.ByID(ctx, args.Req))

	case RPC.TagService.Add:
		var args = struct {
			Req TagAddRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Add(ctx, args.Req))

	case RPC.TagService.Update:
		var args = struct {
			Req TagUpdateRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Update(ctx, args.Req))

	case RPC.TagService.Delete:
		var args = struct {
			Req IDRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Delete(ctx, args.Req))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}

func (UserService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List retrieves all users sorted by ID.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of users`,
					Type:        smd.Array,
					TypeName:    "[]User",
					Items: map[string]string{
						"$ref": "#/definitions/User",
					},
					Definitions: map[string]smd.Definition{
						"User": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "userId",
									Type: smd.Integer,
								},
								{
									Name: "name",
									Type: smd.String,
								},
								{
									Name: "authenticated",
									Type: smd.Boolean,
								},
								{
									Name: "createdOn",
									Type: smd.String,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"ByID": {
				Description: `ByID retrieves a single user by ID.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "IDRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id numeric ID`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `user`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "User",
					Properties: smd.PropertyList{
						{
							Name: "userId",
							Type: smd.Integer,
						},
						{
							Name: "name",
							Type: smd.String,
						},
						{
							Name: "authenticated",
							Type: smd.Boolean,
						},
						{
							Name: "createdOn",
							Type: smd.String,
						},
					},
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "user not found",
					500: "internal server error",
				},
			},
			"Add": {
				Description: `Add creates a user and returns it with the assigned ID.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "UserAddRequest",
						Properties: smd.PropertyList{
							{
								Name:        "name",
								Description: `name unique login name`,
								Type:        smd.String,
							},
							{
								Name:        "password",
								Description: `password plain password, hashed before storage`,
								Type:        smd.String,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `created user`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "User",
					Properties: smd.PropertyList{
						{
							Name: "userId",
							Type: smd.Integer,
						},
						{
							Name: "name",
							Type: smd.String,
						},
						{
							Name: "authenticated",
							Type: smd.Boolean,
						},
						{
							Name: "createdOn",
							Type: smd.String,
						},
					},
				},
				Errors: map[int]string{
					400: "name already taken",
					500: "internal server error",
				},
			},
			"Update": {
				Description: `Update replaces a user by ID. A supplied password is rehashed; an empty
one keeps the stored hash. The creation timestamp is carried over from
the stored user.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "UserUpdateRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id user numeric ID`,
								Type:        smd.Integer,
							},
							{
								Name:        "name",
								Description: `name unique login name`,
								Type:        smd.String,
							},
							{
								Name:        "password",
								Description: `password new plain password, hashed before storage`,
								Type:        smd.String,
							},
							{
								Name:        "authenticated",
								Description: `authenticated session flag`,
								Type:        smd.Boolean,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `updated user`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "User",
					Properties: smd.PropertyList{
						{
							Name: "userId",
							Type: smd.Integer,
						},
						{
							Name: "name",
							Type: smd.String,
						},
						{
							Name: "authenticated",
							Type: smd.Boolean,
						},
						{
							Name: "createdOn",
							Type: smd.String,
						},
					},
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "user not found",
					500: "internal server error",
				},
			},
			"Delete": {
				Description: `Delete removes a user by ID.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "IDRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id numeric ID`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `true when the user existed`,
					Type:        smd.Boolean,
				},
				Errors: map[int]string{
					400: "id must be positive",
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s UserService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.UserService.List:
		resp.Set(s.List(ctx))

	case RPC.UserService.ByID:
		var args = struct {
			Req IDRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.ByID(ctx, args.Req))

	case RPC.UserService.Add:
		var args = struct {
			Req UserAddRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Add(ctx, args.Req))

	case RPC.UserService.Update:
		var args = struct {
			Req UserUpdateRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Update(ctx, args.Req))

	case RPC.UserService.Delete:
		var args = struct {
			Req IDRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Delete(ctx, args.Req))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}

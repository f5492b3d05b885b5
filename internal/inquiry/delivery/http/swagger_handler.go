package http

// CreateInquiry godoc
// @Summary Submit a contact form inquiry
// @Description Submit a contact form inquiry. No authentication required.
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,message=string} true "Inquiry data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/inquiries [post]
func (h *InquiryHandler) CreateInquiryDoc() {}

// ListInquiries godoc
// @Summary List inquiries
// @Description Get submitted inquiries newest first with pagination (Admin only)
// @Tags Inquiries
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=object{inquiries=array,total=int}}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/inquiries [get]
func (h *InquiryHandler) ListInquiriesDoc() {}
